package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	FullName  string `json:"full_name" bson:"fullName"`
	Role      string `json:"role" bson:"role"`
	Status    string `json:"status,omitempty" bson:"status,omitempty"`
	TimeModel `bson:",inline"`
}
