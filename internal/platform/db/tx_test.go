package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

type stubTx struct {
	pgx.Tx
}

func TestTxFromContext_Empty(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Errorf("expected nil tx on empty context, got %v", tx)
	}
}

func TestTxFromContext_Roundtrip(t *testing.T) {
	want := &stubTx{}
	ctx := WithTx(context.Background(), want)

	got := TxFromContext(ctx)
	if got != pgx.Tx(want) {
		t.Errorf("expected the stored tx back, got %v", got)
	}
}

func TestConnFromContext_Empty(t *testing.T) {
	if conn := ConnFromContext(context.Background()); conn != nil {
		t.Errorf("expected nil conn on empty context, got %v", conn)
	}
}
