package model

// Live predicates decide which rows count toward public metrics. They are
// plain SQL fragments over an unqualified `status` column so every query that
// filters a source table uses the same rule.
const (
	LiveArticle    = `status = 'published'`
	LiveVideo      = `status = 'published'`
	LivePodcast    = `status = 'published'`
	LiveEvent      = `COALESCE(status, '') <> 'hidden'`
	LiveBusiness   = `COALESCE(status, '') <> 'hidden'`
	LiveJob        = `status = 'visible'`
	LiveSubscriber = `status = 'active'`
)

// PremiumRolePattern is matched with ILIKE against users.role.
const PremiumRolePattern = "premium"

// UnknownLocation is the bucket for users with a NULL location.
const UnknownLocation = "Unknown"

// UncategorizedBusiness is the bucket for businesses with a NULL category.
const UncategorizedBusiness = "Uncategorized"
