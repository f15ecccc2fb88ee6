package esplora

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

func (e *esplora) GetBlockHeight(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s/blocks/tip/height", e.apiURL)
	status, resp, err := e.doRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return -1, err
	}
	if status != http.StatusOK {
		return -1, errors.New(resp)
	}

	blockHeight, err := strconv.Atoi(resp)
	if err != nil {
		return -1, err
	}

	return blockHeight, nil
}
