package catalog

import (
	"sort"
	"strings"

	"github.com/yungbote/placement-backend/internal/data/repos/analysis"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

// RequirementProvider resolves a target (domain, role, experienceLevel) into
// a usable requirement set. It never fails: stored rows win, built-in
// defaults cover the rest, and anything unrecognized gets the Software
// Engineer set.
type RequirementProvider interface {
	GetRequirements(dbc dbctx.Context, domain, role, experienceLevel string) types.RequirementSet
	Domains(dbc dbctx.Context) map[string][]string
}

type requirementProvider struct {
	repo analysis.RequirementRepo
	log  *logger.Logger
}

func NewRequirementProvider(repo analysis.RequirementRepo, baseLog *logger.Logger) RequirementProvider {
	return &requirementProvider{repo: repo, log: baseLog.With("service", "RequirementProvider")}
}

func (p *requirementProvider) GetRequirements(dbc dbctx.Context, domain, role, experienceLevel string) types.RequirementSet {
	domain = strings.TrimSpace(domain)
	role = strings.TrimSpace(role)
	if strings.TrimSpace(experienceLevel) == "" {
		experienceLevel = "entry"
	}

	if p.repo != nil {
		row, err := p.repo.GetByKey(dbc, domain, role, experienceLevel)
		if err != nil {
			p.log.Warn("requirement lookup failed, using defaults", "domain", domain, "error", err)
		} else if row != nil {
			return row.ToSet()
		}
	}

	set := defaultRequirementSet(domain)
	set.Role = role
	set.ExperienceLevel = experienceLevel
	return set
}

func (p *requirementProvider) Domains(dbc dbctx.Context) map[string][]string {
	out := map[string][]string{}
	for name, roles := range defaultDomainRoles {
		out[name] = append([]string(nil), roles...)
	}

	if p.repo != nil {
		rows, err := p.repo.ListAll(dbc)
		if err != nil {
			p.log.Warn("domain catalog list failed, serving defaults only", "error", err)
		} else {
			for _, row := range rows {
				if row == nil || strings.TrimSpace(row.Domain) == "" {
					continue
				}
				roles := out[row.Domain]
				if r := strings.TrimSpace(row.Role); r != "" && !containsFold(roles, r) {
					roles = append(roles, r)
				}
				out[row.Domain] = roles
			}
		}
	}

	for name := range out {
		sort.Strings(out[name])
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
