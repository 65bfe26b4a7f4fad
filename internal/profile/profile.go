package profile

// Profile is the static content behind the terminal UI: bio, education,
// work history, projects, skills and contact details. It is served as one
// document so the frontend carries no content of its own.
type Profile struct {
	Name       string       `json:"name"`
	Location   string       `json:"location"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	GitHub     string       `json:"github,omitempty"`
	About      string       `json:"about"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Skills     Skills       `json:"skills"`
	Commands   []Command    `json:"commands"`
}

type Education struct {
	School     string   `json:"school"`
	Status     string   `json:"status"`
	Coursework []string `json:"coursework,omitempty"`
}

type Experience struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Period     string   `json:"period"`
	Location   string   `json:"location"`
	Highlights []string `json:"highlights"`
}

type Project struct {
	Name       string   `json:"name"`
	Date       string   `json:"date"`
	Highlights []string `json:"highlights"`
}

type Skills struct {
	Languages       []string `json:"languages"`
	Tools           []string `json:"tools"`
	SpokenLanguages []string `json:"spoken_languages,omitempty"`
	Interests       []string `json:"interests,omitempty"`
}

// Command describes one terminal command for the help listing.
type Command struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Default returns the site owner's profile.
func Default() Profile {
	return Profile{
		Name:     "Liem Luttrell",
		Location: "Philadelphia, PA",
		Email:    "liem@epicliem.com",
		GitHub:   "github.com/epicliem",
		About: "I'm a junior at Germantown Friends School with a passion for software development, " +
			"particularly interested in AI and web technologies. I enjoy creating unique designs " +
			"and exploring different dishes in my free time.",
		Education: []Education{
			{
				School:     "Germantown Friends School",
				Status:     "Junior - Present",
				Coursework: []string{"CS 1-3", "CS Capstone"},
			},
		},
		Experience: []Experience{
			{
				Company:  "Goodloop",
				Role:     "Software Development Intern",
				Period:   "June 2024 - August 2024",
				Location: "Edinburgh, UK",
				Highlights: []string{
					"Designed and implemented web scraper",
					"Analyzed the features extracted through the web scraper with a SOM",
				},
			},
			{
				Company:  "Seeds of Fortune",
				Role:     "Web Development Intern",
				Period:   "June 2023 - August 2023",
				Location: "Remote",
				Highlights: []string{
					"Created a gamified financial simulation",
					"Listened to client concerns and revisions",
				},
			},
		},
		Projects: []Project{
			{
				Name: "ChessAI",
				Date: "June 2023",
				Highlights: []string{
					"Read muzero and alphazero papers, and then implemented muzero",
					"Trained the model on Google cloud TPUs",
				},
			},
			{
				Name: "Miller-Rabin Primality Test",
				Date: "October 2022",
				Highlights: []string{
					"Read about the algorithm",
					"Implemented the algorithm in rust, which I was still learning",
				},
			},
		},
		Skills: Skills{
			Languages:       []string{"Python", "JavaScript", "Rust", "Java"},
			Tools:           []string{"GitHub", "AWS"},
			SpokenLanguages: []string{"English"},
			Interests:       []string{"Passion for creating unique designs, and exploring different dishes"},
		},
		Commands: []Command{
			{Name: "help", Description: "Show available commands"},
			{Name: "clear", Description: "Clear the terminal"},
			{Name: "about", Description: "Display information about me"},
			{Name: "education", Description: "Show my education"},
			{Name: "experience", Description: "List my work experience"},
			{Name: "projects", Description: "Show my projects"},
			{Name: "skills", Description: "List my skills"},
			{Name: "contact", Description: "Show my contact information"},
			{Name: "date", Description: "Display current date and time"},
			{Name: "echo", Description: "Echo a message"},
			{Name: "ls", Description: "List directory contents"},
		},
	}
}
