package support

import (
	"errors"
	"math"
	"testing"
)

func TestCheckedInc(t *testing.T) {
	n, ok := CheckedInc(uint8(41))
	if !ok || n != 42 {
		t.Fatal("expected 42, got", n, ok)
	}

	n, ok = CheckedInc(uint8(math.MaxUint8))
	if ok {
		t.Fatal("expected overflow")
	}
	if n != math.MaxUint8 {
		t.Fatal("value should be left unchanged on overflow, got", n)
	}

	n64, ok := CheckedInc(uint64(math.MaxUint64 - 1))
	if !ok || n64 != math.MaxUint64 {
		t.Fatal("unexpected result", n64, ok)
	}
}

func TestDispatchError(t *testing.T) {
	errKind := errors.New("kind")

	err := error(NewDispatchError("balances", errKind))

	if !errors.Is(err, errKind) {
		t.Fatal("dispatch error does not unwrap to its kind")
	}
	if err.Error() != "balances: kind" {
		t.Fatal("unexpected message:", err)
	}

	var de *DispatchError
	if !errors.As(err, &de) || de.Module != "balances" {
		t.Fatal("errors.As failed", de)
	}
}

func TestBlockString(t *testing.T) {
	bl := Block[uint64, string, int]{
		Header: Header[uint64]{BlockNumber: 3},
		Extrinsics: []Extrinsic[string, int]{
			{Caller: "alice", Call: 1},
			{Caller: "bob", Call: 2},
		},
	}

	if bl.String() != "block 3 (2 extrinsics)" {
		t.Fatal("unexpected string", bl.String())
	}
}
