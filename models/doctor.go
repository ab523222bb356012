package models

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Qualifications string `json:"qualifications"`
	Experience     int    `json:"experience"`
	Availability   string `json:"availability"`
	Bio            string `json:"bio"`
}
