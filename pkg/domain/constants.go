package domain

const (
	// MaxTabs is the upper bound on navigation tabs, Dashboard included.
	MaxTabs = 8

	// DashboardTabID and DashboardLabel identify the platform-managed first tab.
	DashboardTabID = "tab_1"
	DashboardLabel = "dashboard"

	// SettingsLabel identifies the conventional trailing tab.
	SettingsLabel = "settings"

	// DefaultStageID is the stage new pipeline items land in.
	DefaultStageID = "stage_1"
)
