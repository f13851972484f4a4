package domain

import "time"

// Center is a donation centre listed in the directory.
type Center struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Distance  string  `json:"distance"`
	OpenUntil string  `json:"open_until"`
	Rating    float64 `json:"rating"`
}

// Doctor is an appointment-bookable physician.
type Doctor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Hospital     string  `json:"hospital"`
	Rating       float64 `json:"rating"`
	Experience   string  `json:"experience"`
	Availability string  `json:"availability"`
	Image        string  `json:"image,omitempty"`
}

// AllSpecialties is the specialty filter value that matches every doctor.
const AllSpecialties = "All"

// Centers returns the static centre catalog.
func Centers() []Center {
	return []Center{
		{ID: "c1", Name: "Nanjing Drum Tower Hospital", Address: "321 Zhongshan Road, Gulou District", Distance: "1.2 km", OpenUntil: "8:00 PM", Rating: 4.9},
		{ID: "c2", Name: "Jiangsu Province Hospital", Address: "300 Guangzhou Road, Gulou District", Distance: "3.5 km", OpenUntil: "6:00 PM", Rating: 4.8},
		{ID: "c3", Name: "Nanjing First Hospital", Address: "68 Changle Road, Qinhuai District", Distance: "5.1 km", OpenUntil: "5:00 PM", Rating: 4.6},
	}
}

// Doctors returns the static doctor catalog.
func Doctors() []Doctor {
	return []Doctor{
		{ID: "d1", Name: "Dr. Wang Fang", Specialty: "Hematology", Hospital: "Nanjing Drum Tower Hospital", Rating: 4.9, Experience: "15 years", Availability: "Mon, Wed, Fri"},
		{ID: "d2", Name: "Dr. Zhang Min", Specialty: "Cardiology", Hospital: "Jiangsu Province Hospital", Rating: 4.8, Experience: "12 years", Availability: "Tue, Thu"},
		{ID: "d3", Name: "Dr. Liu Yang", Specialty: "General Practice", Hospital: "Nanjing First Hospital", Rating: 4.7, Experience: "8 years", Availability: "Mon - Fri"},
		{ID: "d4", Name: "Dr. Sun Li", Specialty: "Hematology", Hospital: "Jiangsu Province Hospital", Rating: 4.6, Experience: "10 years", Availability: "Wed, Sat"},
		{ID: "d5", Name: "Dr. Zhou Jie", Specialty: "Transfusion Medicine", Hospital: "Nanjing Drum Tower Hospital", Rating: 4.9, Experience: "20 years", Availability: "Tue, Thu, Sat"},
		{ID: "d6", Name: "Dr. Xu Mei", Specialty: "Internal Medicine", Hospital: "Nanjing First Hospital", Rating: 4.5, Experience: "6 years", Availability: "Mon, Thu"},
	}
}

// BookingAckWindow is how long a client shows a booking as confirmed.
const BookingAckWindow = 3 * time.Second

// Booking acknowledges an appointment request. Bookings are not stored.
type Booking struct {
	ID           string    `json:"id"`
	DoctorID     string    `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Hospital     string    `json:"hospital"`
	Availability string    `json:"availability"`
	AccountID    string    `json:"account_id"`
	BookedAt     time.Time `json:"booked_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Overview aggregates roster totals for the admin dashboard.
type Overview struct {
	TotalUsers      int `json:"total_users"`
	TotalDonors     int `json:"total_donors"`
	TotalDonations  int `json:"total_donations"`
	TotalLivesSaved int `json:"total_lives_saved"`
}
