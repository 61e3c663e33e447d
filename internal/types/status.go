package types

// Lifecycle statuses. Programs never use StatusScheduled.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

const (
	LessonKindVideo   = "video"
	LessonKindArticle = "article"
)

const (
	OwnerKindProgram = "program"
	OwnerKindLesson  = "lesson"
)

const (
	VariantPortrait  = "portrait"
	VariantLandscape = "landscape"
	VariantSquare    = "square"
	VariantBanner    = "banner"
)

const (
	AssetKindPoster    = "poster"
	AssetKindThumbnail = "thumbnail"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)
