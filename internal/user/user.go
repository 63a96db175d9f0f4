package user

type User struct {
	ID          int    `json:"userId"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createAt,omitempty"`
	UpdatedAt   string `json:"updateAt,omitempty"`
}

func sanitizeUser(user User) User {
	user.Password = ""
	return user
}
