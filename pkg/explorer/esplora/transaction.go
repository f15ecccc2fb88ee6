package esplora

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bitsend-network/bitsend-daemon/pkg/explorer"
)

func (e *esplora) GetTransactionHex(
	ctx context.Context, txid string,
) (string, error) {
	url := fmt.Sprintf("%s/tx/%s/hex", e.apiURL, txid)
	status, resp, err := e.doRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", errors.New(resp)
	}
	return resp, nil
}

func (e *esplora) GetTransaction(
	ctx context.Context, txid string,
) (explorer.Transaction, error) {
	txhex, err := e.GetTransactionHex(ctx, txid)
	if err != nil {
		return nil, err
	}
	confirmed, err := e.IsTransactionConfirmed(ctx, txid)
	if err != nil {
		return nil, err
	}

	return NewTxFromHex(txhex, confirmed)
}

func (e *esplora) IsTransactionConfirmed(
	ctx context.Context, txid string,
) (bool, error) {
	url := fmt.Sprintf("%s/tx/%s/status", e.apiURL, txid)
	status, resp, err := e.doRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, errors.New(resp)
	}

	txStatus, err := parseTxStatus(resp)
	if err != nil {
		return false, err
	}
	return txStatus.Confirmed, nil
}

func (e *esplora) BroadcastTransaction(
	ctx context.Context, txhex string,
) (string, error) {
	url := fmt.Sprintf("%s/tx", e.apiURL)
	headers := map[string]string{
		"Content-Type": "text/plain",
	}

	status, resp, err := e.doRequest(ctx, http.MethodPost, url, txhex, headers)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", errors.New(resp)
	}

	return resp, nil
}
