package authz

// Capability is a closed enumeration of the admin-panel permission tags.
// Routes are gated on these constants instead of free-form strings so a
// misspelled capability fails to compile instead of silently denying.
type Capability string

const (
	CapPageAnime   Capability = "page-anime"
	CapCreateAnime Capability = "create-anime"
	CapUpdateAnime Capability = "update-anime"
	CapDeleteAnime Capability = "delete-anime"

	CapPageEpisode   Capability = "page-episode"
	CapCreateEpisode Capability = "create-episode"
	CapUpdateEpisode Capability = "update-episode"
	CapDeleteEpisode Capability = "delete-episode"

	CapPageCategory   Capability = "page-category"
	CapCreateCategory Capability = "create-category"
	CapUpdateCategory Capability = "update-category"
	CapDeleteCategory Capability = "delete-category"

	CapPageSeason   Capability = "page-season"
	CapCreateSeason Capability = "create-season"
	CapUpdateSeason Capability = "update-season"
	CapDeleteSeason Capability = "delete-season"

	CapPageStudio   Capability = "page-studio"
	CapCreateStudio Capability = "create-studio"
	CapUpdateStudio Capability = "update-studio"
	CapDeleteStudio Capability = "delete-studio"

	CapPageLanguage   Capability = "page-language"
	CapCreateLanguage Capability = "create-language"
	CapUpdateLanguage Capability = "update-language"
	CapDeleteLanguage Capability = "delete-language"

	CapPageType   Capability = "page-type"
	CapCreateType Capability = "create-type"
	CapUpdateType Capability = "update-type"
	CapDeleteType Capability = "delete-type"

	CapPagePost   Capability = "page-post"
	CapCreatePost Capability = "create-post"
	CapUpdatePost Capability = "update-post"
	CapDeletePost Capability = "delete-post"

	CapManageUsers       Capability = "manage-users"
	CapManageRoles       Capability = "manage-roles"
	CapManagePermissions Capability = "manage-permissions"
)

// All returns every capability, in a stable order. The seeder provisions
// one permission row per entry.
func All() []Capability {
	return []Capability{
		CapPageAnime, CapCreateAnime, CapUpdateAnime, CapDeleteAnime,
		CapPageEpisode, CapCreateEpisode, CapUpdateEpisode, CapDeleteEpisode,
		CapPageCategory, CapCreateCategory, CapUpdateCategory, CapDeleteCategory,
		CapPageSeason, CapCreateSeason, CapUpdateSeason, CapDeleteSeason,
		CapPageStudio, CapCreateStudio, CapUpdateStudio, CapDeleteStudio,
		CapPageLanguage, CapCreateLanguage, CapUpdateLanguage, CapDeleteLanguage,
		CapPageType, CapCreateType, CapUpdateType, CapDeleteType,
		CapPagePost, CapCreatePost, CapUpdatePost, CapDeletePost,
		CapManageUsers, CapManageRoles, CapManagePermissions,
	}
}

// Set answers capability checks for one authenticated actor.
type Set interface {
	Can(Capability) bool
}
