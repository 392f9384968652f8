package models

// UserSession is the signed-in identity carried on every dashboard request.
// It lives in memory and is mirrored to the session store so a restart does
// not log everyone out.
type UserSession struct {
	UserName      string `json:"user_name" bson:"user_name"`
	UserCode      string `json:"user_code" bson:"user_code"`
	RoleSelection string `json:"role_selection" bson:"role_selection"`
}

// Credentials is the login payload.
type Credentials struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Registration is the sign-up payload forwarded to the backend.
type Registration struct {
	UserName      string `json:"user_name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Mobile        string `json:"mobile"`
	RoleSelection string `json:"role_selection" binding:"required"`
}
