package postgre

import (
	"fmt"
	"strings"

	repo "tastoria/internal/menu/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("id", opt.ID)
	add("cafe_id", opt.CafeID)
	add("name", opt.Name)

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilter is shared by the count and page queries of ListItems.
func (r *implRepository) buildFilter(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.CafeID != "" {
		args = append(args, opt.CafeID)
		conditions = append(conditions, fmt.Sprintf("cafe_id = $%d", len(args)))
	}
	if opt.Category != "" {
		args = append(args, opt.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if q := strings.TrimSpace(opt.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildPage(opt repo.ListItemsOptions, args []any) (string, []any) {
	var parts []string
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}
	return strings.Join(parts, " "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
