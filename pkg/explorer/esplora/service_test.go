package esplora

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitsend-network/bitsend-daemon/pkg/transactionutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/ratelimit"
)

// newTestServer fakes the subset of the esplora HTTP API used by the service.
func newTestServer(t *testing.T) (*httptest.Server, string, string) {
	t.Helper()

	prevTx := wire.NewMsgTx(2)
	script, _ := hex.DecodeString("00141d0f172a0ecb48aee1be1f2687d2963ae33f71a1")
	prevTx.AddTxOut(wire.NewTxOut(100000, script))
	prevTxHex, err := transactionutil.TxToHex(prevTx)
	require.NoError(t, err)
	prevTxID := transactionutil.TxID(prevTx)

	mux := http.NewServeMux()
	mux.HandleFunc("/blocks/tip/height", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "810000")
	})
	mux.HandleFunc(fmt.Sprintf("/tx/%s/hex", prevTxID), func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, prevTxHex)
	})
	mux.HandleFunc(fmt.Sprintf("/tx/%s/status", prevTxID), func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"confirmed": true, "block_height": 809000}`)
	})
	mux.HandleFunc("/address/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(
			w,
			`[{"txid": "%s", "vout": 0, "value": 100000, "status": {"confirmed": true}}]`,
			prevTxID,
		)
	})
	mux.HandleFunc("/tx", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fmt.Fprint(w, prevTxID)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, prevTxID, prevTxHex
}

func TestNewService(t *testing.T) {
	server, _, _ := newTestServer(t)

	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestFailingNewService(t *testing.T) {
	tests := []struct {
		opts ServiceOpts
		err  error
	}{
		{
			opts: ServiceOpts{},
			err:  ErrNullAPIURL,
		},
		{
			opts: ServiceOpts{APIURL: "http://localhost:3001", RequestsPerSecond: -1},
			err:  ErrInvalidRequestsPerSecond,
		},
	}
	for _, tt := range tests {
		_, err := NewService(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestGetBlockHeight(t *testing.T) {
	server, _, _ := newTestServer(t)
	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)

	height, err := svc.GetBlockHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 810000, height)
}

func TestGetTransactionHex(t *testing.T) {
	server, txid, txhex := newTestServer(t)
	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)

	resp, err := svc.GetTransactionHex(context.Background(), txid)
	require.NoError(t, err)
	assert.Equal(t, txhex, resp)

	confirmed, err := svc.IsTransactionConfirmed(context.Background(), txid)
	require.NoError(t, err)
	assert.Equal(t, true, confirmed)
}

func TestGetUnspents(t *testing.T) {
	server, txid, _ := newTestServer(t)
	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)

	unspents, err := svc.GetUnspents(
		context.Background(), "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
	)
	require.NoError(t, err)
	require.Len(t, unspents, 1)
	assert.Equal(t, txid, unspents[0].Hash())
	assert.Equal(t, uint64(100000), unspents[0].Value())
	assert.Equal(t, true, unspents[0].IsConfirmed())
	assert.NotEmpty(t, unspents[0].Script())
}

func TestBroadcastTransaction(t *testing.T) {
	server, txid, txhex := newTestServer(t)
	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)

	resp, err := svc.BroadcastTransaction(context.Background(), txhex)
	require.NoError(t, err)
	assert.Equal(t, txid, resp)
}

func TestCancelledFetchAborts(t *testing.T) {
	server, txid, _ := newTestServer(t)
	svc, err := NewService(ServiceOpts{
		APIURL:  server.URL,
		Limiter: ratelimit.NewUnlimited(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.GetTransactionHex(ctx, txid)
	assert.NotNil(t, err)
}
