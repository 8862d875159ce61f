package models

// Notification preference names.
const (
	PrefEmailNotifications = "emailNotifications"
	PrefWeeklyReports      = "weeklyReports"
	PrefGoalReminders      = "goalReminders"
)

// UserProfile holds account settings for the single local user.
type UserProfile struct {
	ID                int64             `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	Email             string            `json:"email" yaml:"email"`
	Avatar            string            `json:"avatar" yaml:"avatar"`
	JoinedAt          string            `json:"joinedAt" yaml:"joined_at"`
	Preferences       Preferences       `json:"preferences" yaml:"preferences"`
	ConnectedAccounts ConnectedAccounts `json:"connectedAccounts" yaml:"connected_accounts"`
}

// Preferences are the notification toggles on the profile page.
type Preferences struct {
	EmailNotifications bool `json:"emailNotifications" yaml:"email_notifications"`
	WeeklyReports      bool `json:"weeklyReports" yaml:"weekly_reports"`
	GoalReminders      bool `json:"goalReminders" yaml:"goal_reminders"`
}

// Toggle flips the named preference. It reports false for an unknown name.
func (p *Preferences) Toggle(name string) bool {
	switch name {
	case PrefEmailNotifications:
		p.EmailNotifications = !p.EmailNotifications
	case PrefWeeklyReports:
		p.WeeklyReports = !p.WeeklyReports
	case PrefGoalReminders:
		p.GoalReminders = !p.GoalReminders
	default:
		return false
	}
	return true
}

// ConnectedAccounts tracks linked third-party accounts.
type ConnectedAccounts struct {
	YouTube YouTubeAccount `json:"youtube" yaml:"youtube"`
}

// YouTubeAccount is the connection state of the user's YouTube account.
type YouTubeAccount struct {
	Connected bool   `json:"connected" yaml:"connected"`
	Email     string `json:"email" yaml:"email"`
}
