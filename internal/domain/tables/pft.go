package tables

// pullUps: reps, 100 point cap.
var pullUps = eventTable{
	Male: {
		Age17To20: {Min: 4, Max: 23, MinPts: 40, MaxPts: 100},
		Age21To25: {Min: 5, Max: 23, MinPts: 40, MaxPts: 100},
		Age26To30: {Min: 5, Max: 23, MinPts: 40, MaxPts: 100},
		Age31To35: {Min: 5, Max: 23, MinPts: 40, MaxPts: 100},
		Age36To40: {Min: 5, Max: 23, MinPts: 40, MaxPts: 100},
		Age41To45: {Min: 5, Max: 23, MinPts: 40, MaxPts: 100},
		Age46To50: {Min: 4, Max: 23, MinPts: 40, MaxPts: 100},
		Age51Plus: {Min: 3, Max: 23, MinPts: 40, MaxPts: 100},
	},
	Female: {
		Age17To20: {Min: 1, Max: 12, MinPts: 40, MaxPts: 100},
		Age21To25: {Min: 1, Max: 12, MinPts: 40, MaxPts: 100},
		Age26To30: {Min: 2, Max: 12, MinPts: 40, MaxPts: 100},
		Age31To35: {Min: 2, Max: 12, MinPts: 40, MaxPts: 100},
		Age36To40: {Min: 2, Max: 12, MinPts: 40, MaxPts: 100},
		Age41To45: {Min: 1, Max: 12, MinPts: 40, MaxPts: 100},
		Age46To50: {Min: 1, Max: 12, MinPts: 40, MaxPts: 100},
		Age51Plus: {Min: 1, Max: 12, MinPts: 40, MaxPts: 100},
	},
}

// pushUps: reps in two minutes, 70 point cap.
var pushUps = eventTable{
	Male: {
		Age17To20: {Min: 42, Max: 82, MinPts: 40, MaxPts: 70},
		Age21To25: {Min: 47, Max: 87, MinPts: 40, MaxPts: 70},
		Age26To30: {Min: 44, Max: 84, MinPts: 40, MaxPts: 70},
		Age31To35: {Min: 40, Max: 80, MinPts: 40, MaxPts: 70},
		Age36To40: {Min: 36, Max: 76, MinPts: 40, MaxPts: 70},
		Age41To45: {Min: 32, Max: 72, MinPts: 40, MaxPts: 70},
		Age46To50: {Min: 28, Max: 68, MinPts: 40, MaxPts: 70},
		Age51Plus: {Min: 24, Max: 64, MinPts: 40, MaxPts: 70},
	},
	Female: {
		Age17To20: {Min: 19, Max: 42, MinPts: 40, MaxPts: 70},
		Age21To25: {Min: 25, Max: 48, MinPts: 40, MaxPts: 70},
		Age26To30: {Min: 27, Max: 50, MinPts: 40, MaxPts: 70},
		Age31To35: {Min: 23, Max: 46, MinPts: 40, MaxPts: 70},
		Age36To40: {Min: 19, Max: 42, MinPts: 40, MaxPts: 70},
		Age41To45: {Min: 15, Max: 38, MinPts: 40, MaxPts: 70},
		Age46To50: {Min: 11, Max: 34, MinPts: 40, MaxPts: 70},
		Age51Plus: {Min: 7, Max: 30, MinPts: 40, MaxPts: 70},
	},
}

// run3Mile: seconds, fastest to slowest passing.
var run3Mile = eventTable{
	Male: {
		Age17To20: {Min: 1080, Max: 1660, MinPts: 40, MaxPts: 100}, // 18:00 - 27:40
		Age21To25: {Min: 1080, Max: 1660, MinPts: 40, MaxPts: 100}, // 18:00 - 27:40
		Age26To30: {Min: 1080, Max: 1680, MinPts: 40, MaxPts: 100}, // 18:00 - 28:00
		Age31To35: {Min: 1080, Max: 1700, MinPts: 40, MaxPts: 100}, // 18:00 - 28:20
		Age36To40: {Min: 1080, Max: 1720, MinPts: 40, MaxPts: 100}, // 18:00 - 28:40
		Age41To45: {Min: 1110, Max: 1760, MinPts: 40, MaxPts: 100}, // 18:30 - 29:20
		Age46To50: {Min: 1140, Max: 1800, MinPts: 40, MaxPts: 100}, // 19:00 - 30:00
		Age51Plus: {Min: 1170, Max: 1980, MinPts: 40, MaxPts: 100}, // 19:30 - 33:00
	},
	Female: {
		Age17To20: {Min: 1260, Max: 1850, MinPts: 40, MaxPts: 100}, // 21:00 - 30:50
		Age21To25: {Min: 1260, Max: 1850, MinPts: 40, MaxPts: 100}, // 21:00 - 30:50
		Age26To30: {Min: 1290, Max: 1880, MinPts: 40, MaxPts: 100}, // 21:30 - 31:20
		Age31To35: {Min: 1320, Max: 1920, MinPts: 40, MaxPts: 100}, // 22:00 - 32:00
		Age36To40: {Min: 1350, Max: 1950, MinPts: 40, MaxPts: 100}, // 22:30 - 32:30
		Age41To45: {Min: 1380, Max: 1980, MinPts: 40, MaxPts: 100}, // 23:00 - 33:00
		Age46To50: {Min: 1410, Max: 2040, MinPts: 40, MaxPts: 100}, // 23:30 - 34:00
		Age51Plus: {Min: 1440, Max: 2160, MinPts: 40, MaxPts: 100}, // 24:00 - 36:00
	},
}

// row5K is tabulated only for ages 46 and up.
var row5K = eventTable{
	Male: {
		Age46To50: {Min: 1200, Max: 1680, MinPts: 40, MaxPts: 100}, // 20:00 - 28:00
		Age51Plus: {Min: 1260, Max: 1800, MinPts: 40, MaxPts: 100}, // 21:00 - 30:00
	},
	Female: {
		Age46To50: {Min: 1380, Max: 1860, MinPts: 40, MaxPts: 100}, // 23:00 - 31:00
		Age51Plus: {Min: 1440, Max: 1980, MinPts: 40, MaxPts: 100}, // 24:00 - 33:00
	},
}

// plankCurve is shared by every gender and age. Points between breakpoints
// are interpolated; below 70 seconds the event is failed.
var plankCurve = []Breakpoint{
	{Seconds: 225, Points: 100}, // 3:45
	{Seconds: 210, Points: 95},  // 3:30
	{Seconds: 195, Points: 90},  // 3:15
	{Seconds: 180, Points: 85},  // 3:00
	{Seconds: 165, Points: 80},  // 2:45
	{Seconds: 150, Points: 75},  // 2:30
	{Seconds: 135, Points: 70},  // 2:15
	{Seconds: 120, Points: 65},  // 2:00
	{Seconds: 105, Points: 60},  // 1:45
	{Seconds: 90, Points: 55},   // 1:30
	{Seconds: 80, Points: 50},   // 1:20
	{Seconds: 75, Points: 45},   // 1:15
	{Seconds: 70, Points: 40},   // 1:10
	{Seconds: 0, Points: 0},
}
