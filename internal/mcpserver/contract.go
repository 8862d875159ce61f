package mcpserver

// FixturesFormatURI addresses the seed-file description resource.
const FixturesFormatURI = "tubetrack://fixtures-format"

// FixturesFormat describes the YAML seed file the stores are loaded from.
const FixturesFormat = `# tubetrack Fixtures Format

The service starts from a YAML file with six top-level keys. Only profile is
required; a missing list seeds an empty store. Changes are never written back.

## Structure

` + "```" + `yaml
profile:
  id: 1
  name: John Doe                 # REQUIRED
  email: john.doe@example.com    # REQUIRED, valid address
  joined_at: "2024-01-01"
  preferences: {email_notifications: true, weekly_reports: true, goal_reminders: true}
  connected_accounts:
    youtube: {connected: false, email: ""}

playlists:
  - id: 1                        # REQUIRED, unique
    title: React Masterclass     # REQUIRED
    category: Frontend
    difficulty: Intermediate     # Beginner | Intermediate | Advanced
    videos_count: 25
    completed_count: 18          # 0..videos_count
    total_duration: 8h 45m

videos:
  - id: 1
    playlist_id: 1               # REQUIRED, must name a playlist
    title: Introduction          # REQUIRED
    duration: "12:30"            # m:ss or h:mm:ss
    watch_progress: 100          # 0..100
    completed: true              # true exactly when watch_progress is 100

goals:
  - id: 1
    title: Finish the course     # REQUIRED
    type: playlist               # playlist | habit | skill | project
    priority: high               # low | medium | high
    target_date: "2024-02-15"    # REQUIRED, YYYY-MM-DD
    current: 18                  # 0..target
    target: 25                   # REQUIRED, 1..1000000
    status: active               # active | completed (default active)

summaries:
  - id: 1
    title: Hooks deep dive       # REQUIRED
    video_id: 4                  # optional, must name a video
    confidence: 95               # 0..100
    generated_at: 2024-01-21T14:30:00Z
    key_points: [first, second]

weekly:
  - {day: Mon, minutes: 85}
` + "```" + `

## Rules

1. Ids are positive and unique per list. New records get ids above the
   highest seeded id; a deleted id is never issued again.
2. Goal progress is derived from current/target and is not read from the file.
3. An invalid file is rejected as a whole; when watching, the previous data
   stays in place.
`
