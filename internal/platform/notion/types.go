package notion

// Property names of the tracked-entry database.
const (
	PropSlug         = "titleSlug"
	PropLastReviewed = "Last Reviewed"
	PropStage        = "Repetition Gap"
	PropLevel        = "Level"
	PropSource       = "Source"
	PropMaterials    = "Materials"
	PropName         = "Name"
)

// property is the union of the property value shapes this database uses.
// Only the member matching the property type is set.
type property struct {
	Type     string       `json:"type,omitempty"`
	RichText []richText   `json:"rich_text,omitempty"`
	Title    []richText   `json:"title,omitempty"`
	Date     *dateValue   `json:"date,omitempty"`
	Select   *selectValue `json:"select,omitempty"`
	Files    []fileValue  `json:"files,omitempty"`
}

type properties map[string]property

type richText struct {
	Type        string       `json:"type,omitempty"`
	Text        *textContent `json:"text,omitempty"`
	Annotations *annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        *string      `json:"href,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

type annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

type dateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type selectValue struct {
	Name string `json:"name"`
}

type fileValue struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	External *externalFile `json:"external,omitempty"`
}

type externalFile struct {
	URL string `json:"url"`
}

type page struct {
	Object     string     `json:"object"`
	ID         string     `json:"id"`
	Properties properties `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     parent     `json:"parent"`
	Properties properties `json:"properties"`
}

type updatePageRequest struct {
	Properties properties `json:"properties"`
}

type queryRequest struct {
	PageSize int            `json:"page_size"`
	Filter   compoundFilter `json:"filter"`
}

type compoundFilter struct {
	Or []propertyFilter `json:"or"`
}

type propertyFilter struct {
	Property string     `json:"property"`
	RichText textFilter `json:"rich_text"`
}

type textFilter struct {
	Equals string `json:"equals"`
}

type queryResponse struct {
	Object     string  `json:"object"`
	Results    []page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type errorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
