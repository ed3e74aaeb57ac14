package catalog

// Dropdown option lists shared across the form sections. These mirror the
// reference data the backend expects verbatim, so they are not configurable.
var (
	Channels = []string{"Janam Global", "Politics", "Sports"}

	Languages = []string{"Tamil", "English"}

	Statuses = []string{"Draft", "Published", "Archived"}

	YesNoOptions = []string{"Yes", "No"}

	SubscriptionOptions = []string{"All", "Premium"}

	ModerationLevels = []string{"open", "moderated"}

	EventTypes = []string{"free", "paid"}

	NewsTypes = []string{"Normal News", "Breaking News"}

	AudioTypes = []string{"Interview", "Educational", "Roundtable", "Conversational"}
)
