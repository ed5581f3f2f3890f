package entity

// SearchTopic selects which provider index a search runs against.
type SearchTopic string

const (
	TopicGeneral SearchTopic = "general"
	TopicNews    SearchTopic = "news"
	TopicFinance SearchTopic = "finance"
)

func (t SearchTopic) String() string {
	return string(t)
}

func (t SearchTopic) Valid() bool {
	switch t {
	case TopicGeneral, TopicNews, TopicFinance:
		return true
	}
	return false
}

const DefaultMaxResults = 5

// SearchQuery carries the four values the search provider accepts.
type SearchQuery struct {
	Query             string
	MaxResults        int
	Topic             SearchTopic
	IncludeRawContent bool
}

// WithDefaults fills unset fields with the provider defaults. The query
// text itself is never touched.
func (q SearchQuery) WithDefaults() SearchQuery {
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}
	if q.Topic == "" {
		q.Topic = TopicGeneral
	}
	return q
}
