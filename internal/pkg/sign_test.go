package pkg

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

func signMessage(t *testing.T, message string) (address, signature string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	// 钱包签名的恢复位是 27/28
	sig[crypto.RecoveryIDOffset] += 27
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), hexutil.Encode(sig)
}

func TestRecoverAddress(t *testing.T) {
	address, signature := signMessage(t, "Sign in to bitcast")

	recovered, err := RecoverAddress("Sign in to bitcast", signature)
	if err != nil {
		t.Fatalf("RecoverAddress: %v", err)
	}
	if !strings.EqualFold(recovered, address) {
		t.Errorf("recovered %s, want %s", recovered, address)
	}
}

func TestRecoverAddressTamperedMessage(t *testing.T) {
	address, signature := signMessage(t, "Sign in to bitcast")

	recovered, err := RecoverAddress("a different message", signature)
	if err == nil && strings.EqualFold(recovered, address) {
		t.Error("tampered message must not recover the signer address")
	}
}

func TestRecoverAddressRawRecoveryID(t *testing.T) {
	// 恢复位未加 27 的原始签名同样接受
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte("hello")), key)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	recovered, err := RecoverAddress("hello", hexutil.Encode(sig))
	if err != nil {
		t.Fatalf("RecoverAddress: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey).Hex()
	if !strings.EqualFold(recovered, want) {
		t.Errorf("recovered %s, want %s", recovered, want)
	}
}

func TestRecoverAddressInvalidInput(t *testing.T) {
	for _, sig := range []string{"", "0x1234", "not-hex"} {
		if _, err := RecoverAddress("msg", sig); err == nil {
			t.Errorf("expected error for signature %q", sig)
		}
	}
}
