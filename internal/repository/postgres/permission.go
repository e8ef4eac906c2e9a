package postgres

import (
	"context"
	"database/sql"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/repository"
)

type permissionRepository struct {
	db *sql.DB
}

func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) ListRoles(ctx context.Context, userID int32) ([]domain.Role, error) {
	logger.EnterMethod("permissionRepository.ListRoles", "userID", userID)

	query := `SELECT ro.name FROM user_roles ur JOIN roles ro ON ro.id = ur.role_id WHERE ur.user_id = $1 ORDER BY ro.name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.ExitMethodWithError("permissionRepository.ListRoles", err, "userID", userID)
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("permissionRepository.ListRoles", "userID", userID, "roles", roles)
	return roles, nil
}

// HasPermission checks both role-granted and directly granted permissions.
func (r *permissionRepository) HasPermission(ctx context.Context, userID int32, capability domain.Capability) (bool, error) {
	logger.EnterMethod("permissionRepository.HasPermission", "userID", userID, "capability", capability)

	query := `SELECT EXISTS (
	              SELECT 1 FROM user_roles ur
	              JOIN role_permissions rp ON rp.role_id = ur.role_id
	              JOIN permissions p ON p.id = rp.permission_id
	              WHERE ur.user_id = $1 AND p.name = $2
	              UNION ALL
	              SELECT 1 FROM user_permissions up
	              JOIN permissions p ON p.id = up.permission_id
	              WHERE up.user_id = $1 AND p.name = $2
	          )`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, userID, capability).Scan(&ok); err != nil {
		logger.ExitMethodWithError("permissionRepository.HasPermission", err, "userID", userID)
		return false, err
	}

	logger.ExitMethod("permissionRepository.HasPermission", "userID", userID, "allowed", ok)
	return ok, nil
}
