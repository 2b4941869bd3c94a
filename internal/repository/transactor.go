package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor menjalankan beberapa operasi repository dalam satu transaksi.
// Transaksi dibawa lewat context, sehingga repository yang menerima ctx dari
// fn otomatis memakai tx yang sama.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// InTx menjalankan fn di dalam transaksi. Bila ctx sudah membawa transaksi,
// fn dijalankan di transaksi tersebut (tanpa nested savepoint).
func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn mengembalikan tx dari context bila ada, selain itu db biasa.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
