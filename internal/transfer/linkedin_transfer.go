package transfer

// LinkedInUserInfo is the OpenID Connect userinfo payload.
type LinkedInUserInfo struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

type UGCPost struct {
	Author          string             `json:"author"`
	LifecycleState  string             `json:"lifecycleState"`
	SpecificContent UGCSpecificContent `json:"specificContent"`
	Visibility      UGCVisibility      `json:"visibility"`
}

type UGCSpecificContent struct {
	ShareContent UGCShareContent `json:"com.linkedin.ugc.ShareContent"`
}

type UGCShareContent struct {
	ShareCommentary    UGCText    `json:"shareCommentary"`
	ShareMediaCategory string     `json:"shareMediaCategory"`
	Media              []UGCMedia `json:"media,omitempty"`
}

type UGCText struct {
	Text string `json:"text"`
}

type UGCMedia struct {
	Status      string  `json:"status"`
	OriginalURL string  `json:"originalUrl"`
	Title       UGCText `json:"title"`
}

type UGCVisibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

type UGCPostResponse struct {
	ID string `json:"id"`
}

type LinkedInError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
