package readstore

import (
	"context"
	"log/slog"
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jackc/pgx/v5/pgtype"
	gocache "github.com/patrickmn/go-cache"
)

const cadenceRulesCacheKey = "cadence_rules"

type CadenceRuleReadQueries interface {
	ListCadenceRules(ctx context.Context, db sqlc.DBTX) ([]sqlc.CadenceRules, error)
}

// CadenceRuleReadStore serves the rule table from a TTL cache.
// Stale reads are acceptable: rule edits are administrative and rare.
type CadenceRuleReadStore struct {
	queries CadenceRuleReadQueries
	db      sqlc.DBTX
	cache   *gocache.Cache
	logger  *slog.Logger
}

func NewCadenceRuleReadStore(queries CadenceRuleReadQueries, db sqlc.DBTX, ttl time.Duration, logger *slog.Logger) *CadenceRuleReadStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CadenceRuleReadStore{
		queries: queries,
		db:      db,
		cache:   gocache.New(ttl, 2*ttl),
		logger:  logger,
	}
}

func (r *CadenceRuleReadStore) All(ctx context.Context) ([]cadence.Rule, error) {
	if v, ok := r.cache.Get(cadenceRulesCacheKey); ok {
		if rules, ok := v.([]cadence.Rule); ok {
			return rules, nil
		}
	}

	rows, err := r.queries.ListCadenceRules(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cadence rules", err)
	}
	rules := slice.Map(rows, func(_ int, row sqlc.CadenceRules) cadence.Rule {
		return toCadenceRule(row)
	})

	for _, rule := range rules {
		if verr := rule.Validate(); verr != nil {
			r.logger.Error("cadence rule data error",
				"cadence_key", rule.CadenceKey,
				"error", verr.Error())
		}
	}

	r.cache.SetDefault(cadenceRulesCacheKey, rules)
	return rules, nil
}

// Invalidate drops the cached table so the next read hits the store.
func (r *CadenceRuleReadStore) Invalidate() {
	r.cache.Delete(cadenceRulesCacheKey)
}

func toCadenceRule(row sqlc.CadenceRules) cadence.Rule {
	return cadence.Rule{
		CadenceKey:        row.CadenceKey,
		WorkItemType:      row.WorkItemType,
		Status:            row.Status,
		DaysUntilEventMin: intPtrFromPgInt4(row.DaysUntilEventMin),
		DaysUntilEventMax: intPtrFromPgInt4(row.DaysUntilEventMax),
		FollowUpDays:      int(row.FollowUpDays),
		BusinessDaysOnly:  row.BusinessDaysOnly,
		Priority:          int(row.Priority),
		PausesFollowUp:    row.PausesFollowUp,
	}
}

func intPtrFromPgInt4(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}
