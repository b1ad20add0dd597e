package models

// UserProfile is the minimal account record this service keeps. Sign-up and
// session state belong to the identity provider; we only need display data.
type UserProfile struct {
	UserID      string `dynamodbav:"userId" json:"userId"`
	DisplayName string `dynamodbav:"displayName" json:"displayName"`
	Email       string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	PhotoURL    string `dynamodbav:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        string `dynamodbav:"role,omitempty" json:"role,omitempty"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
