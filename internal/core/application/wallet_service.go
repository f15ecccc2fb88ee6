package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitsend-network/bitsend-daemon/pkg/bufferutil"
	"github.com/bitsend-network/bitsend-daemon/pkg/explorer"
	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
)

// WalletInfo is returned by the operations that initialize the internal
// wallet. Mnemonic is only populated when a new one has been generated.
type WalletInfo struct {
	Address       string
	PublicKey     string
	SigningKeyWIF string
	Mnemonic      []string
}

// BalanceInfo aggregates the unspents of an address.
type BalanceInfo struct {
	ConfirmedBalance   uint64
	UnconfirmedBalance uint64
	UnspentCount       int
}

// TransferOutput is a recipient of a transfer.
type TransferOutput struct {
	Address string
	Amount  uint64
}

// TransferParams collects everything needed to build and sign a transaction.
// The listed inputs are spent exactly as given, no coin selection happens.
type TransferParams struct {
	Inputs  []wallet.InputRef
	Outputs []TransferOutput
	// SatsPerByte overrides the service fee rate when positive.
	SatsPerByte uint64
	// ChangeAddress receives the leftover amount. When empty the change
	// goes back to the wallet's own address.
	ChangeAddress string
	// DerivationPath overrides the wallet's default signing key when set.
	DerivationPath string
}

func (p TransferParams) validate() error {
	if len(p.Inputs) <= 0 {
		return ErrMissingInputs
	}
	if len(p.Outputs) <= 0 {
		return ErrMissingOutputs
	}
	for _, out := range p.Outputs {
		if len(out.Address) <= 0 {
			return ErrNullAddress
		}
	}
	return nil
}

// TransferResult is the signed transaction produced by Transfer, ready to
// be broadcast.
type TransferResult struct {
	TxHex string
	TxID  string
	Fee   uint64
}

// TxStatusInfo reports whether a transaction has been confirmed, along with
// the chain tip at the time of the lookup.
type TxStatusInfo struct {
	TxID      string
	Confirmed bool
	TipHeight int
}

type WalletService interface {
	CreateWallet(ctx context.Context, entropySize int) (*WalletInfo, error)
	RestoreWallet(
		ctx context.Context, mnemonic []string, passphrase string,
	) (*WalletInfo, error)
	ImportWallet(ctx context.Context, wif string) (*WalletInfo, error)
	GetBalance(ctx context.Context, addr string) (*BalanceInfo, error)
	Transfer(ctx context.Context, params TransferParams) (*TransferResult, error)
	Broadcast(ctx context.Context, txhex string) (string, error)
	GetTransactionStatus(ctx context.Context, txid string) (*TxStatusInfo, error)
}

type walletService struct {
	explorerSvc explorer.Service
	net         wallet.Network
	satsPerByte uint64

	lock   sync.RWMutex
	wallet *wallet.Wallet
}

// NewWalletService returns a wallet service bound to the given explorer and
// network. A zero fee rate falls back to the default one.
func NewWalletService(
	explorerSvc explorer.Service,
	net wallet.Network,
	satsPerByte uint64,
) WalletService {
	if satsPerByte <= 0 {
		satsPerByte = wallet.DefaultSatsPerByte
	}
	return &walletService{
		explorerSvc: explorerSvc,
		net:         net,
		satsPerByte: satsPerByte,
	}
}

func (s *walletService) CreateWallet(
	ctx context.Context, entropySize int,
) (*WalletInfo, error) {
	logger := s.logger("CreateWallet")

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.wallet != nil {
		return nil, ErrWalletAlreadyInitialized
	}

	if entropySize <= 0 {
		entropySize = 128
	}
	w, err := wallet.NewWallet(wallet.NewWalletOpts{
		Network:     s.net,
		EntropySize: entropySize,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.infoForWallet(w, true)
	if err != nil {
		return nil, err
	}

	s.wallet = w
	logger.WithField("address", info.Address).Info("wallet created")
	return info, nil
}

func (s *walletService) RestoreWallet(
	ctx context.Context, mnemonic []string, passphrase string,
) (*WalletInfo, error) {
	logger := s.logger("RestoreWallet")

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.wallet != nil {
		return nil, ErrWalletAlreadyInitialized
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Network:    s.net,
		Mnemonic:   mnemonic,
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.infoForWallet(w, false)
	if err != nil {
		return nil, err
	}

	s.wallet = w
	logger.WithField("address", info.Address).Info("wallet restored")
	return info, nil
}

func (s *walletService) ImportWallet(
	ctx context.Context, wif string,
) (*WalletInfo, error) {
	logger := s.logger("ImportWallet")

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.wallet != nil {
		return nil, ErrWalletAlreadyInitialized
	}

	w, err := wallet.NewWalletFromWIF(wallet.NewWalletFromWIFOpts{
		Network: s.net,
		WIF:     wif,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.infoForWallet(w, false)
	if err != nil {
		return nil, err
	}

	s.wallet = w
	logger.WithField("address", info.Address).Info("wallet imported")
	return info, nil
}

func (s *walletService) GetBalance(
	ctx context.Context, addr string,
) (*BalanceInfo, error) {
	logger := s.logger("GetBalance")

	if len(addr) <= 0 {
		w, err := s.currentWallet()
		if err != nil {
			return nil, err
		}
		addr, err = w.DeriveAddress(wallet.DeriveAddressOpts{})
		if err != nil {
			return nil, err
		}
	}
	if _, err := wallet.OutputScriptFromAddress(addr, s.net); err != nil {
		return nil, err
	}

	unspents, err := s.explorerSvc.GetUnspents(ctx, addr)
	if err != nil {
		logger.WithError(err).Warn("failed to fetch unspents")
		return nil, err
	}

	info := &BalanceInfo{UnspentCount: len(unspents)}
	for _, u := range unspents {
		if u.IsConfirmed() {
			info.ConfirmedBalance += u.Value()
		} else {
			info.UnconfirmedBalance += u.Value()
		}
	}
	return info, nil
}

func (s *walletService) Transfer(
	ctx context.Context, params TransferParams,
) (*TransferResult, error) {
	logger := s.logger("Transfer")

	if err := params.validate(); err != nil {
		return nil, err
	}
	w, err := s.currentWallet()
	if err != nil {
		return nil, err
	}

	builder, err := wallet.NewTxBuilder(wallet.TxBuilderOpts{
		Network:  s.net,
		Resolver: s.explorerSvc,
	})
	if err != nil {
		return nil, err
	}

	for _, in := range params.Inputs {
		if err := builder.AddInput(ctx, in); err != nil {
			return nil, err
		}
	}
	for _, out := range params.Outputs {
		if err := builder.AddOutput(out.Address, out.Amount); err != nil {
			return nil, err
		}
	}

	satsPerByte := s.satsPerByte
	if params.SatsPerByte > 0 {
		satsPerByte = params.SatsPerByte
	}
	fee, err := builder.ComputeFee(satsPerByte)
	if err != nil {
		return nil, err
	}

	changeAddress := params.ChangeAddress
	if len(changeAddress) <= 0 {
		changeAddress, err = w.DeriveAddress(wallet.DeriveAddressOpts{
			DerivationPath: params.DerivationPath,
		})
		if err != nil {
			return nil, err
		}
	}
	if err := builder.ResolveChange(changeAddress); err != nil {
		return nil, err
	}

	unsigned, err := builder.Unsigned()
	if err != nil {
		return nil, err
	}

	signed, err := w.SignTransaction(wallet.SignTransactionOpts{
		Unsigned:       unsigned,
		DerivationPath: params.DerivationPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	txHex, err := signed.Hex()
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"txid": signed.TxID(),
		"fee":  fee,
	}).Info("transfer transaction signed")

	return &TransferResult{
		TxHex: txHex,
		TxID:  signed.TxID(),
		Fee:   signed.Fee(),
	}, nil
}

func (s *walletService) Broadcast(
	ctx context.Context, txhex string,
) (string, error) {
	logger := s.logger("Broadcast")

	if len(txhex) <= 0 {
		return "", ErrNullTxHex
	}

	txid, err := s.explorerSvc.BroadcastTransaction(ctx, txhex)
	if err != nil {
		logger.WithError(err).Warn("failed to broadcast transaction")
		return "", err
	}

	logger.WithField("txid", txid).Info("transaction broadcast")
	return txid, nil
}

func (s *walletService) GetTransactionStatus(
	ctx context.Context, txid string,
) (*TxStatusInfo, error) {
	logger := s.logger("GetTransactionStatus")

	if _, err := bufferutil.TxIDToBytes(txid); err != nil || len(txid) != 64 {
		return nil, ErrInvalidTxID
	}

	confirmed, err := s.explorerSvc.IsTransactionConfirmed(ctx, txid)
	if err != nil {
		logger.WithError(err).Warn("failed to fetch transaction status")
		return nil, err
	}
	tipHeight, err := s.explorerSvc.GetBlockHeight(ctx)
	if err != nil {
		logger.WithError(err).Warn("failed to fetch chain tip")
		return nil, err
	}

	return &TxStatusInfo{
		TxID:      txid,
		Confirmed: confirmed,
		TipHeight: tipHeight,
	}, nil
}

func (s *walletService) currentWallet() (*wallet.Wallet, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.wallet == nil {
		return nil, ErrWalletNotInitialized
	}
	return s.wallet, nil
}

func (s *walletService) infoForWallet(
	w *wallet.Wallet, withMnemonic bool,
) (*WalletInfo, error) {
	addr, err := w.DeriveAddress(wallet.DeriveAddressOpts{})
	if err != nil {
		return nil, err
	}
	pubkey, err := w.PublicKeyHex(wallet.DeriveSigningKeyPairOpts{})
	if err != nil {
		return nil, err
	}
	wif, err := w.WIF(wallet.DeriveSigningKeyPairOpts{})
	if err != nil {
		return nil, err
	}

	info := &WalletInfo{
		Address:       addr,
		PublicKey:     pubkey,
		SigningKeyWIF: wif,
	}
	if withMnemonic {
		mnemonic, err := w.Mnemonic()
		if err != nil {
			return nil, err
		}
		info.Mnemonic = mnemonic
	}
	return info, nil
}

func (s *walletService) logger(op string) *log.Entry {
	return log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"op":         op,
	})
}
