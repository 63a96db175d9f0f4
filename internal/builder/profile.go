package builder

// DefaultGameID is the profile used when a requested game is unknown.
const DefaultGameID = "valorant"

// GameProfile biases category scoring for one game.
type GameProfile struct {
	ID                string  `json:"id"`
	Label             string  `json:"label"`
	Genre             string  `json:"genre"`
	GPUWeight         float64 `json:"gpuWeight"`
	MonitorWeight     float64 `json:"monitorWeight"`
	PeripheralWeight  float64 `json:"peripheralWeight"`
	PreferHighRefresh bool    `json:"preferHighRefresh"`
	PreferLowLatency  bool    `json:"preferLowLatency"`
}

// ProfileTable is an ordered, read-only lookup of game profiles.
type ProfileTable struct {
	order    []string
	byID     map[string]GameProfile
	fallback string
}

// NewProfileTable indexes profiles by ID. fallbackID must name one of them;
// otherwise the first profile becomes the fallback.
func NewProfileTable(profiles []GameProfile, fallbackID string) *ProfileTable {
	t := &ProfileTable{
		order: make([]string, 0, len(profiles)),
		byID:  make(map[string]GameProfile, len(profiles)),
	}
	for _, p := range profiles {
		if _, dup := t.byID[p.ID]; dup {
			continue
		}
		t.order = append(t.order, p.ID)
		t.byID[p.ID] = p
	}
	t.fallback = fallbackID
	if _, ok := t.byID[fallbackID]; !ok && len(t.order) > 0 {
		t.fallback = t.order[0]
	}
	return t
}

// Resolve returns the profile for id. The second result is false when the
// fallback profile was substituted.
func (t *ProfileTable) Resolve(id string) (GameProfile, bool) {
	if p, ok := t.byID[id]; ok {
		return p, true
	}
	return t.byID[t.fallback], false
}

// List returns profiles in declaration order.
func (t *ProfileTable) List() []GameProfile {
	out := make([]GameProfile, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// DefaultProfiles returns the table of supported games.
func DefaultProfiles() *ProfileTable {
	return NewProfileTable([]GameProfile{
		{ID: "valorant", Label: "Valorant", Genre: "Tactical FPS", GPUWeight: 0.8, MonitorWeight: 1.4, PeripheralWeight: 1.3, PreferHighRefresh: true, PreferLowLatency: true},
		{ID: "cs2", Label: "Counter-Strike 2", Genre: "Tactical FPS", GPUWeight: 0.9, MonitorWeight: 1.5, PeripheralWeight: 1.3, PreferHighRefresh: true, PreferLowLatency: true},
		{ID: "apex-legends", Label: "Apex Legends", Genre: "Battle Royale", GPUWeight: 1.1, MonitorWeight: 1.3, PeripheralWeight: 1.1, PreferHighRefresh: true, PreferLowLatency: true},
		{ID: "fortnite", Label: "Fortnite", Genre: "Battle Royale", GPUWeight: 1.0, MonitorWeight: 1.2, PeripheralWeight: 1.0, PreferHighRefresh: true},
		{ID: "call-of-duty", Label: "Call of Duty: Warzone", Genre: "Battle Royale", GPUWeight: 1.2, MonitorWeight: 1.2, PeripheralWeight: 1.1, PreferHighRefresh: true, PreferLowLatency: true},
		{ID: "cyberpunk-2077", Label: "Cyberpunk 2077", Genre: "Open-World RPG", GPUWeight: 1.5, MonitorWeight: 1.0, PeripheralWeight: 0.6},
		{ID: "gta-v", Label: "Grand Theft Auto V", Genre: "Open-World Action", GPUWeight: 1.2, MonitorWeight: 0.9, PeripheralWeight: 0.7},
		{ID: "elden-ring", Label: "Elden Ring", Genre: "Action RPG", GPUWeight: 1.3, MonitorWeight: 1.0, PeripheralWeight: 0.7},
		{ID: "minecraft", Label: "Minecraft", Genre: "Sandbox", GPUWeight: 0.7, MonitorWeight: 0.8, PeripheralWeight: 0.8},
		{ID: "league-of-legends", Label: "League of Legends", Genre: "MOBA", GPUWeight: 0.6, MonitorWeight: 1.1, PeripheralWeight: 1.2, PreferHighRefresh: true, PreferLowLatency: true},
	}, DefaultGameID)
}
