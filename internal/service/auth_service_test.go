package service

import (
	"errors"
	"strings"
	"testing"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

func signedMessage(t *testing.T, message string) (address, signature string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), hexutil.Encode(sig)
}

func TestSignInRegistersNewUser(t *testing.T) {
	pkg.InitJWT([]byte("test-secret"))
	users := &fakeUserStore{users: map[uint64]*model.User{}}
	svc := NewAuthService(users)

	address, signature := signedMessage(t, "hello bitcast")

	gotAddr, token, err := svc.SignIn("hello bitcast", signature, address)
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !strings.EqualFold(gotAddr, address) {
		t.Errorf("address = %s, want %s", gotAddr, address)
	}

	// 地址小写入库
	if _, err := users.FindByAddress(strings.ToLower(address)); err != nil {
		t.Errorf("user not registered: %v", err)
	}

	claims, err := pkg.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Address != strings.ToLower(address) {
		t.Errorf("claims.Address = %q, want lower-cased %q", claims.Address, address)
	}
}

func TestSignInExistingUser(t *testing.T) {
	pkg.InitJWT([]byte("test-secret"))
	address, signature := signedMessage(t, "hello again")

	users := &fakeUserStore{users: map[uint64]*model.User{
		5: {ID: 5, Address: strings.ToLower(address)},
	}}
	svc := NewAuthService(users)

	_, token, err := svc.SignIn("hello again", signature, address)
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	claims, err := pkg.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.ID != 5 {
		t.Errorf("claims.ID = %d, want the existing user 5", claims.ID)
	}
	if len(users.users) != 1 {
		t.Errorf("no duplicate user expected, have %d", len(users.users))
	}
}

func TestSignInAddressMismatch(t *testing.T) {
	users := &fakeUserStore{users: map[uint64]*model.User{}}
	svc := NewAuthService(users)

	_, signature := signedMessage(t, "hello")

	_, _, err := svc.SignIn("hello", signature, "0x0000000000000000000000000000000000000001")
	var apiErr *pkg.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Errorf("err = %v, want 401 APIError", err)
	}
	if len(users.users) != 0 {
		t.Error("no user must be registered on failed sign-in")
	}
}

func TestSignInGarbageSignature(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{users: map[uint64]*model.User{}})

	_, _, err := svc.SignIn("hello", "0xdead", "0x0000000000000000000000000000000000000001")
	var apiErr *pkg.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Errorf("err = %v, want 401 APIError", err)
	}
}
