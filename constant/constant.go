package constant

const (
	WINDOW_TITLE    = "Default Window"
	WINDOW_WIDTH    = 640
	WINDOW_HEIGHT   = 480
	BUFFER_WIDTH    = 320
	BUFFER_HEIGHT   = 240
	REFRESH_RATE    = 60.0
	BYTES_PER_PIXEL = 4
)
