package domain

// DefaultAdmins returns the two built-in administrator accounts. They are
// merged into the user collection by id at startup regardless of what the
// durable store holds, so the system is never without an Admin login.
func DefaultAdmins() []User {
	return []User{
		{
			ID:       1001,
			FullName: "Admin One",
			Email:    "admin1@example.com",
			Password: "admin123",
			Phone:    "9123569104",
			Gender:   "Female",
			DOB:      "2006-04-18",
			Country:  "India",
			Role:     RoleAdmin,
		},
		{
			ID:       1002,
			FullName: "Admin Two",
			Email:    "admin2@example.com",
			Password: "admin123",
			Phone:    "9361968178",
			Gender:   "Male",
			DOB:      "2005-12-02",
			Country:  "India",
			Role:     RoleAdmin,
		},
	}
}
