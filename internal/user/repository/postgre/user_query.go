package postgre

import (
	"fmt"
	"strings"

	repo "tastoria/internal/user/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, strings.ToLower(opt.Email))
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	if opt.VerificationCode != "" {
		args = append(args, opt.VerificationCode)
		conditions = append(conditions, fmt.Sprintf("verification_code = $%d AND verification_expires_at > NOW()", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}
