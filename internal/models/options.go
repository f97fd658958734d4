package models

// Справочники значений для фронта. Поля в базе остаются свободным
// текстом: справочник - подсказка, а не ограничение.

const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"

	InterviewTypeOnline = "Online"
	InterviewTypeOnSite = "On-site"
	InterviewTypeWalkIn = "Walk-in"
)

var (
	GenderOptions = []string{"male", "female", "other"}

	NoticePeriodOptions = []string{
		"Immediate Joiner",
		"Upto 1 week",
		"Upto 1 month",
		"Upto 2 month",
		"Any",
	}

	ExperienceOptions = []string{
		"Fresher",
		"0-1 year of experience",
		"1-2 year of experience",
		"2-4 year of experience",
		"5+ year of experience",
		"10+ year of experience",
	}

	CategoryOptions = []string{
		"IT & Networking",
		"Sales & Marketing",
		"Accounting",
		"Data Science",
		"Digital Marketing",
		"Human Resource",
		"Customer Service",
		"Project Manager",
		"Other",
	}

	EducationOptions = []string{
		"High School (10th)",
		"Higher Secondary (12th)",
		"Diploma",
		"Bachelor of Arts (BA)",
		"Bachelor of Science (BSc)",
		"Bachelor of Commerce (BCom)",
		"Bachelor of Technology (BTech)",
		"Bachelor of Engineering (BE)",
		"Bachelor of Computer Applications (BCA)",
		"Bachelor of Business Administration (BBA)",
		"Master of Arts (MA)",
		"Master of Science (MSc)",
		"Master of Commerce (MCom)",
		"Master of Technology (MTech)",
		"Master of Engineering (ME)",
		"Master of Computer Applications (MCA)",
		"Master of Business Administration (MBA)",
		"PhD (Doctorate)",
		"Other",
	}

	JobTypeOptions = []string{JobTypeFullTime, JobTypePartTime}

	InterviewTypeOptions = []string{InterviewTypeOnline, InterviewTypeOnSite, InterviewTypeWalkIn}

	WorkTypeOptions = []string{"Remote", "On-site", "Hybrid"}

	ExperienceLevelOptions = []string{
		"Fresher",
		"0-1 year of experience",
		"1-2 year of experience",
		"2-4 year of experience",
		"5+ year of experience",
	}

	ShiftOptions = []string{"Day", "Night"}

	VerificationStatusOptions = []string{VerificationStatusVerified, VerificationStatusNotVerified}
)
