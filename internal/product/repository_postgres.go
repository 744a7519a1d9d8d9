package product

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT category_tag, product_name, product_price, product_img, product_alt
		FROM catalog_product
		ORDER BY ord, product_id
	`
	listProductsByCategoryQuery = `
		SELECT category_tag, product_name, product_price, product_img, product_alt
		FROM catalog_product
		WHERE category_tag = ANY($1)
		ORDER BY ord, product_id
	`
	deleteProductsQuery = `DELETE FROM catalog_product`
	insertProductQuery  = `
		INSERT INTO catalog_product (category_tag, product_name, product_price, product_img, product_alt, ord)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the stored catalog. When the table is missing or unreadable the
// static catalog is served so the storefront search keeps working.
func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list catalog products"), "falling back to static catalog")
		return Catalog()
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) ListByCategory(tags []string) []Product {
	rows, err := r.db.Query(listProductsByCategoryQuery, pq.Array(tags))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list catalog products by category"), "falling back to static catalog")
		return NewInMemoryRepository(DefaultCatalog).ListByCategory(tags)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Reset deletes every stored product and inserts products in order inside one transaction.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return serr.Wrap(err, "failed to begin reset transaction")
	}
	if _, err := tx.Exec(deleteProductsQuery); err != nil {
		_ = tx.Rollback()
		return serr.Wrap(err, "failed to clear catalog products")
	}
	for i, p := range products {
		if _, err := tx.Exec(insertProductQuery, p.ID, p.Name, p.Price, p.Image, p.Alt, i); err != nil {
			_ = tx.Rollback()
			return serr.Wrap(err, "failed to insert catalog product "+p.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return serr.Wrap(err, "failed to commit catalog reset")
	}
	return nil
}

func scanProducts(rows *sql.Rows) []Product {
	out := make([]Product, 0)
	for rows.Next() {
		var (
			p          Product
			price, img sql.NullString
			alt        sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &img, &alt); err != nil {
			continue
		}
		p.Price = price.String
		p.Image = img.String
		p.Alt = alt.String
		out = append(out, p)
	}
	return out
}
