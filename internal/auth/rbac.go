package auth

import (
	"log/slog"
	"net/http"
)

type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

func (ra *RBACAuthorization) requirePermission(check func(*User) bool, denied string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !check(user) {
				ra.logger.WarnContext(r.Context(), denied,
					"user_id", user.ID,
					"user_permissions", user.Permissions)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RBACAuthorization) RequireProcessPayroll() func(http.Handler) http.Handler {
	return ra.requirePermission((*User).CanProcessPayroll, "access denied: cannot process payroll")
}

func (ra *RBACAuthorization) RequireExportPayroll() func(http.Handler) http.Handler {
	return ra.requirePermission((*User).CanExportPayroll, "access denied: cannot export payroll")
}

func (ra *RBACAuthorization) RequireManageCompensation() func(http.Handler) http.Handler {
	return ra.requirePermission(func(u *User) bool {
		return u.HasAnyPermission([]string{PermissionManageCompensation, PermissionAdmin})
	}, "access denied: cannot manage compensation")
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.requirePermission((*User).IsAdmin, "access denied: admin permissions required")
}
