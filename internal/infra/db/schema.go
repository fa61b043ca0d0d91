package db

import (
	"context"
	"errors"
	"fmt"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type table struct {
	name  string
	model interface{}
}

// 作成順。productsの後にシードを入れる
var tables = []table{
	{name: "users", model: &model.User{}},
	{name: "products", model: &model.Product{}},
	{name: "orders", model: &model.Order{}},
	{name: "order_items", model: &model.OrderItem{}},
}

// SchemaManager は起動時のテーブル作成とカタログのシードを担当する。
type SchemaManager struct {
	db       *gorm.DB
	products repo.ProductRepository
	log      logrus.FieldLogger
}

func NewSchemaManager(db *gorm.DB, products repo.ProductRepository, log logrus.FieldLogger) *SchemaManager {
	return &SchemaManager{db: db, products: products, log: log}
}

// Ensure は4テーブルを無ければ作る（既存テーブルは壊さない）。
// 失敗したテーブルはログに残して次へ進み、最後にまとめて返す。
// productsの作成に成功したときだけシードする。
func (m *SchemaManager) Ensure(ctx context.Context) error {
	var errs []error

	for _, t := range tables {
		if err := m.db.WithContext(ctx).AutoMigrate(t.model); err != nil {
			m.log.WithError(err).WithField("table", t.name).Error("create table failed")
			errs = append(errs, fmt.Errorf("create %s: %w", t.name, err))
			continue
		}
		m.log.WithField("table", t.name).Debug("table ready")

		if t.name == "products" {
			if err := m.SeedCatalog(ctx); err != nil {
				m.log.WithError(err).Error("seed catalog failed")
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// SeedCatalog は固定カタログをID単位で「無ければ挿入」する。何度実行しても同じ。
func (m *SchemaManager) SeedCatalog(ctx context.Context) error {
	seed := make([]model.Product, len(CatalogSeed))
	copy(seed, CatalogSeed)

	if err := m.products.InsertIfAbsent(ctx, seed); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	m.log.WithField("count", len(seed)).Info("products seeded")
	return nil
}
