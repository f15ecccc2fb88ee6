package esplora

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/bitsend-network/bitsend-daemon/pkg/explorer"
	"github.com/bitsend-network/bitsend-daemon/pkg/transactionutil"
	"golang.org/x/sync/errgroup"
)

func (e *esplora) GetUnspents(
	ctx context.Context, addr string,
) ([]explorer.Utxo, error) {
	return e.getUnspents(ctx, addr)
}

func (e *esplora) GetUnspentsForAddresses(
	ctx context.Context, addresses []string,
) ([]explorer.Utxo, error) {
	mtx := sync.Mutex{}
	unspents := make([]explorer.Utxo, 0)

	g, gctx := errgroup.WithContext(ctx)
	for i := range addresses {
		addr := addresses[i]
		g.Go(func() error {
			unspentsForAddress, err := e.getUnspents(gctx, addr)
			if err != nil {
				return err
			}
			mtx.Lock()
			defer mtx.Unlock()
			unspents = append(unspents, unspentsForAddress...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return unspents, nil
}

func (e *esplora) GetBalance(
	ctx context.Context, addr string,
) (uint64, error) {
	url := fmt.Sprintf("%s/address/%s", e.apiURL, addr)
	status, resp, err := e.doRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, errors.New(resp)
	}

	info, err := parseAddressInfo(resp)
	if err != nil {
		return 0, err
	}
	return info.balance()
}

func (e *esplora) getUnspents(
	ctx context.Context, addr string,
) ([]explorer.Utxo, error) {
	url := fmt.Sprintf("%s/address/%s/utxo", e.apiURL, addr)
	status, resp, err := e.doRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}
	if status != http.StatusOK {
		return nil, errors.New(resp)
	}

	results, err := parseUtxoResults(resp)
	if err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}

	// the utxo endpoint does not return the locking script, it must be
	// recovered from the funding transaction of each utxo.
	unspents := make([]explorer.Utxo, len(results))
	g, gctx := errgroup.WithContext(ctx)
	for i := range results {
		i := i
		out := results[i]
		g.Go(func() error {
			txhex, err := e.GetTransactionHex(gctx, out.Txid)
			if err != nil {
				return err
			}
			prevTx, err := transactionutil.NewTxFromHex(txhex)
			if err != nil {
				return err
			}
			prevout, err := transactionutil.PrevoutFromTx(prevTx, out.Vout)
			if err != nil {
				return err
			}
			unspents[i] = explorer.NewWitnessUtxo(
				out.Txid, out.Vout, out.Value, prevout.PkScript,
				out.Status.Confirmed,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}

	return unspents, nil
}
