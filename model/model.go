package model

// Msg is the frame exchanged with the frontend over the websocket.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// RouteResult is the evaluated pressure drop of one duct section.
type RouteResult struct {
	Route        string  `json:"route"`
	VolumeFlow   float64 `json:"volume_flow"`
	PressureDrop float64 `json:"pressure_drop"`
}

// ComfortResult carries the thermal and air quality indices of one room.
type ComfortResult struct {
	Room string  `json:"room"`
	PMV  float64 `json:"pmv"`
	PPD  float64 `json:"ppd"`
}
