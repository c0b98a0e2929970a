package http

// CreateUser godoc
// @Summary Provision the caller's profile
// @Description Links a USER record to the authenticated principal. Only one record per principal.
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{username=string,name=string,email=string,phone=string} true "Profile"
// @Success 201 {object} object{message=string,data=object{id=int,externalIdentityRef=string,username=string,role=string}}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// Me godoc
// @Summary Get the caller's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,externalIdentityRef=string,username=string,role=string}
// @Failure 404 {object} object{error=string}
// @Router /api/users/me [get]
func (h *UserHandler) MeDoc() {}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} object{id=int,externalIdentityRef=string,username=string,role=string}
// @Failure 403 {object} object{error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}

// ChangeRole godoc
// @Summary Change a user's role
// @Description Also updates the role in the identity provider's public metadata
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{role=string} true "ADMIN, MODERATOR, MEMBER or USER"
// @Success 200 {object} object{message=string,data=object}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/users/{id}/role [put]
func (h *UserHandler) ChangeRoleDoc() {}
