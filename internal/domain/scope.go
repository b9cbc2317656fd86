package domain

// Scopes are the token abilities a bearer token may carry, one per
// resource/action pair. A handler refuses the request when the token lacks
// the scope it requires.
const (
	ScopeDiseaseView   = "disease:view"
	ScopeDiseaseCreate = "disease:create"
	ScopeDiseaseUpdate = "disease:update"
	ScopeDiseaseDelete = "disease:delete"

	ScopeLocalizationView   = "localization:view"
	ScopeLocalizationCreate = "localization:create"
	ScopeLocalizationUpdate = "localization:update"
	ScopeLocalizationDelete = "localization:delete"

	ScopeReportcaseView   = "reportcase:view"
	ScopeReportcaseCreate = "reportcase:create"
	ScopeReportcaseUpdate = "reportcase:update"
	ScopeReportcaseDelete = "reportcase:delete"
)

// AllScopes returns every known scope. Login grants this set when the client
// does not ask for a narrower one.
func AllScopes() []string {
	return []string{
		ScopeDiseaseView,
		ScopeDiseaseCreate,
		ScopeDiseaseUpdate,
		ScopeDiseaseDelete,
		ScopeLocalizationView,
		ScopeLocalizationCreate,
		ScopeLocalizationUpdate,
		ScopeLocalizationDelete,
		ScopeReportcaseView,
		ScopeReportcaseCreate,
		ScopeReportcaseUpdate,
		ScopeReportcaseDelete,
	}
}
