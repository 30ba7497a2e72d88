package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ruanwillians/indoorTv-core/internal/domain"
	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, document, owner_id, address_id, address_street, address_city, address_state, address_zip`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// El slot único de dirección vive en columnas de la misma fila.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.CompanySnapshot, error) {
	addrID, street, city, state, zip := addressColumns(company.Address())
	_, err := r.db.Exec(ctx, `
		INSERT INTO companies (id, name, document, owner_id, address_id, address_street, address_city, address_state, address_zip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`,
		company.ID(), company.Name(), company.Document(), company.OwnerID(),
		addrID, street, city, state, zip,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDocumentInUse
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	snap := company.Object()
	return &snap, nil
}

// FindByID devuelve la entidad completa; domain.ErrCompanyNotFound si no existe.
func (r *CompanyRepo) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return company, nil
}

// FindByDocument devuelve (nil, nil) cuando no existe.
func (r *CompanyRepo) FindByDocument(ctx context.Context, document string) (*entity.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE document = $1 LIMIT 1`, document)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by document: %w", err)
	}
	return company, nil
}

// FindAll pagina por offset: skip = (page-1)*limit cuando page > 1.
func (r *CompanyRepo) FindAll(ctx context.Context, page, limit int) ([]entity.CompanySnapshot, error) {
	if limit <= 0 {
		limit = 10
	}
	skip := 0
	if page > 1 {
		skip = (page - 1) * limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+companyColumns+`
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []entity.CompanySnapshot
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, company.Object())
	}
	return list, rows.Err()
}

// Update persiste el estado actual de la entidad, dirección incluida.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.CompanySnapshot, error) {
	addrID, street, city, state, zip := addressColumns(company.Address())
	cmd, err := r.db.Exec(ctx, `
		UPDATE companies SET name = $2, document = $3, address_id = $4, address_street = $5,
			address_city = $6, address_state = $7, address_zip = $8, updated_at = now()
		WHERE id = $1`,
		company.ID(), company.Name(), company.Document(),
		addrID, street, city, state, zip,
	)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	snap := company.Object()
	return &snap, nil
}

// Remove elimina una empresa por ID.
func (r *CompanyRepo) Remove(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func addressColumns(addr *entity.Address) (id, street, city, state, zip *string) {
	if addr == nil {
		return nil, nil, nil, nil, nil
	}
	return &addr.ID, &addr.Street, &addr.City, &addr.State, &addr.ZipCode
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var id, name, document, ownerID string
	var addrID, street, city, state, zip *string
	if err := row.Scan(&id, &name, &document, &ownerID, &addrID, &street, &city, &state, &zip); err != nil {
		return nil, err
	}
	var addr *entity.Address
	if addrID != nil {
		addr = &entity.Address{ID: *addrID}
		if street != nil {
			addr.Street = *street
		}
		if city != nil {
			addr.City = *city
		}
		if state != nil {
			addr.State = *state
		}
		if zip != nil {
			addr.ZipCode = *zip
		}
	}
	return entity.NewCompany(id, name, document, ownerID, addr)
}
