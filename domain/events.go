package domain

// SourceAPI is the fixed event source tag stamped on every published event.
const SourceAPI = "hmaas.api"

// Domain event type names published to the bus.
const (
	EventItemCreated     = "ItemCreated"
	EventCategoryCreated = "CategoryCreated"
)
