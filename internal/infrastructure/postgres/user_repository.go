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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password, document, is_active`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las escrituras multi-fila corren dentro de una transacción explícita:
// Begin, escrituras sobre el handle de la tx, Commit; el Rollback diferido
// cubre cualquier fallo intermedio.
type UserRepo struct {
	db     DB
	hasher repository.PasswordHasher
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB, hasher repository.PasswordHasher) *UserRepo {
	return &UserRepo{db: db, hasher: hasher}
}

// Create hashea el password y persiste el usuario. Los timestamps los asigna
// el servidor. Una sola fila; la transacción se mantiene por simetría con
// CreateWithCompanyAccess.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.UserSnapshot, error) {
	hashed, err := r.hasher.Hash(user.Password())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertUser(ctx, tx, user, hashed); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	created, err := entity.NewUser(user.ID(), user.Name(), user.Email(), hashed, user.Document(), nil, user.IsActive())
	if err != nil {
		return nil, err
	}
	snap := created.Object()
	return &snap, nil
}

// CreateWithCompanyAccess persiste el usuario y la fila de company_access en
// una sola transacción: o se confirman ambas escrituras o ninguna.
func (r *UserRepo) CreateWithCompanyAccess(ctx context.Context, user *entity.User, company *entity.Company, role entity.Role) (*entity.UserSnapshot, error) {
	hashed, err := r.hasher.Hash(user.Password())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertUser(ctx, tx, user, hashed); err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO company_access (user_id, company_id, role) VALUES ($1, $2, $3)`,
		user.ID(), company.ID(), string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("insert company access: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	created, err := entity.NewUser(user.ID(), user.Name(), user.Email(), hashed, user.Document(), []entity.Company{*company}, user.IsActive())
	if err != nil {
		return nil, err
	}
	snap := created.Object()
	return &snap, nil
}

func insertUser(ctx context.Context, q Querier, user *entity.User, hashedPassword string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO users (id, name, email, password, document, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		user.ID(), user.Name(), user.Email(), hashedPassword, user.Document(), user.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindAll pagina por offset: skip = (page-1)*limit cuando page > 1.
func (r *UserRepo) FindAll(ctx context.Context, page, limit int) ([]entity.UserSnapshot, error) {
	if limit <= 0 {
		limit = 10
	}
	skip := 0
	if page > 1 {
		skip = (page - 1) * limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []entity.UserSnapshot
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, user.Object())
	}
	return list, rows.Err()
}

// FindByID devuelve domain.ErrUserNotFound si no hay fila.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.UserSnapshot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	snap := user.Object()
	return &snap, nil
}

// FindByEmail devuelve (nil, nil) cuando no existe: la ausencia se usa para
// sondear unicidad y no es un error.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserSnapshot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	snap := user.Object()
	return &snap, nil
}

// Update aplica el parche sobre una sola fila. El password, si viene en el
// parche, se hashea antes de escribir.
func (r *UserRepo) Update(ctx context.Context, id string, patch repository.UpdateUser) (*entity.UserSnapshot, error) {
	password := patch.Password
	if password != nil {
		hashed, err := r.hasher.Hash(*password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		password = &hashed
	}

	row := r.db.QueryRow(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			document = COALESCE($4, document),
			is_active = COALESCE($5, is_active),
			password = COALESCE($6, password),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, patch.Name, patch.Email, patch.Document, patch.IsActive, password,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	snap := user.Object()
	return &snap, nil
}

// Remove elimina el usuario por id.
func (r *UserRepo) Remove(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UpdateCompanyAccess lee la fila de acceso y actualiza el rol dentro de una
// transacción para que el read-then-write vea un estado consistente. Si no
// hay fila previa devuelve domain.ErrAccessNotFound sin crear nada.
func (r *UserRepo) UpdateCompanyAccess(ctx context.Context, user *entity.User, companyID string, role entity.Role) (*entity.UserSnapshot, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	err = tx.QueryRow(ctx,
		`SELECT role FROM company_access WHERE user_id = $1 AND company_id = $2`,
		user.ID(), companyID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccessNotFound
		}
		return nil, fmt.Errorf("get company access: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE company_access SET role = $3 WHERE user_id = $1 AND company_id = $2`,
		user.ID(), companyID, string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("update company access: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	// Proyección del usuario recibido, sin releer de la base.
	snap := user.Object()
	return &snap, nil
}

// scanUser reconstruye la entidad desde una fila; la entidad revalida sus
// invariantes al construirse.
func scanUser(row pgx.Row) (*entity.User, error) {
	var id, name, email, password, document string
	var isActive bool
	if err := row.Scan(&id, &name, &email, &password, &document, &isActive); err != nil {
		return nil, err
	}
	return entity.NewUser(id, name, email, password, document, nil, isActive)
}
