package events

var typeToName = map[EventType]string{
	EventLevelUp:     "LevelUp",
	EventLifeLost:    "LifeLost",
	EventGameEnd:     "GameEnd",
	EventPauseToggle: "PauseToggle",
	EventSoundToggle: "SoundToggle",
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// String implements fmt.Stringer
func (et EventType) String() string {
	return GetEventName(et)
}
