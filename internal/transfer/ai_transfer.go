package transfer

type ProjectInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Tone           string `json:"tone"`
	ContentType    string `json:"content_type"`
	TargetAudience string `json:"target_audience"`
	Guidelines     string `json:"guidelines"`
}

type SessionInput struct {
	PostIdea    string `json:"post_idea"`
	ContentType string `json:"content_type"`
}

type GenerateInput struct {
	Count int `json:"count"`
}

type VersionInput struct {
	Content string `json:"content"`
}

type ConvertInput struct {
	PillarID *int64 `json:"pillar_id"`
	Title    string `json:"title"`
}

type AssetInput struct {
	AssetType string `json:"asset_type"`
	Style     string `json:"style"`
	Prompt    string `json:"prompt"`
	Count     int    `json:"count"`
}
