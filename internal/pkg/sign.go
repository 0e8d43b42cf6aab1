package pkg

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrBadSignature = errors.New("bad signature")

// RecoverAddress 从 personal_sign 签名恢复出签名地址（带校验和的 hex 形式）
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", ErrBadSignature
	}
	if len(sig) != crypto.SignatureLength {
		return "", ErrBadSignature
	}

	// 钱包按以太坊惯例把恢复位放在 27/28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", ErrBadSignature
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
