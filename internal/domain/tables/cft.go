package tables

// movementToContact: 880 yards, seconds.
var movementToContact = eventTable{
	Male: {
		Age17To20: {Min: 158, Max: 253, MinPts: 40, MaxPts: 100}, // 2:38 - 4:13
		Age21To25: {Min: 158, Max: 253, MinPts: 40, MaxPts: 100}, // 2:38 - 4:13
		Age26To30: {Min: 159, Max: 261, MinPts: 40, MaxPts: 100}, // 2:39 - 4:21
		Age31To35: {Min: 162, Max: 273, MinPts: 40, MaxPts: 100}, // 2:42 - 4:33
		Age36To40: {Min: 168, Max: 291, MinPts: 40, MaxPts: 100}, // 2:48 - 4:51
		Age41To45: {Min: 174, Max: 303, MinPts: 40, MaxPts: 100}, // 2:54 - 5:03
		Age46To50: {Min: 180, Max: 318, MinPts: 40, MaxPts: 100}, // 3:00 - 5:18
		Age51Plus: {Min: 192, Max: 341, MinPts: 40, MaxPts: 100}, // 3:12 - 5:41
	},
	Female: {
		Age17To20: {Min: 188, Max: 307, MinPts: 40, MaxPts: 100}, // 3:08 - 5:07
		Age21To25: {Min: 190, Max: 311, MinPts: 40, MaxPts: 100}, // 3:10 - 5:11
		Age26To30: {Min: 195, Max: 321, MinPts: 40, MaxPts: 100}, // 3:15 - 5:21
		Age31To35: {Min: 203, Max: 337, MinPts: 40, MaxPts: 100}, // 3:23 - 5:37
		Age36To40: {Min: 212, Max: 356, MinPts: 40, MaxPts: 100}, // 3:32 - 5:56
		Age41To45: {Min: 222, Max: 374, MinPts: 40, MaxPts: 100}, // 3:42 - 6:14
		Age46To50: {Min: 230, Max: 390, MinPts: 40, MaxPts: 100}, // 3:50 - 6:30
		Age51Plus: {Min: 242, Max: 413, MinPts: 40, MaxPts: 100}, // 4:02 - 6:53
	},
}

// ammoLift: 30 lb can lifts in two minutes.
var ammoLift = eventTable{
	Male: {
		Age17To20: {Min: 45, Max: 106, MinPts: 40, MaxPts: 100},
		Age21To25: {Min: 45, Max: 106, MinPts: 40, MaxPts: 100},
		Age26To30: {Min: 45, Max: 103, MinPts: 40, MaxPts: 100},
		Age31To35: {Min: 41, Max: 99, MinPts: 40, MaxPts: 100},
		Age36To40: {Min: 38, Max: 93, MinPts: 40, MaxPts: 100},
		Age41To45: {Min: 34, Max: 88, MinPts: 40, MaxPts: 100},
		Age46To50: {Min: 30, Max: 80, MinPts: 40, MaxPts: 100},
		Age51Plus: {Min: 25, Max: 72, MinPts: 40, MaxPts: 100},
	},
	Female: {
		Age17To20: {Min: 25, Max: 66, MinPts: 40, MaxPts: 100},
		Age21To25: {Min: 25, Max: 66, MinPts: 40, MaxPts: 100},
		Age26To30: {Min: 25, Max: 65, MinPts: 40, MaxPts: 100},
		Age31To35: {Min: 23, Max: 63, MinPts: 40, MaxPts: 100},
		Age36To40: {Min: 22, Max: 60, MinPts: 40, MaxPts: 100},
		Age41To45: {Min: 19, Max: 57, MinPts: 40, MaxPts: 100},
		Age46To50: {Min: 16, Max: 52, MinPts: 40, MaxPts: 100},
		Age51Plus: {Min: 12, Max: 46, MinPts: 40, MaxPts: 100},
	},
}

// maneuverUnderFire: 300 yards, seconds.
var maneuverUnderFire = eventTable{
	Male: {
		Age17To20: {Min: 134, Max: 245, MinPts: 40, MaxPts: 100}, // 2:14 - 4:05
		Age21To25: {Min: 134, Max: 245, MinPts: 40, MaxPts: 100}, // 2:14 - 4:05
		Age26To30: {Min: 136, Max: 254, MinPts: 40, MaxPts: 100}, // 2:16 - 4:14
		Age31To35: {Min: 141, Max: 269, MinPts: 40, MaxPts: 100}, // 2:21 - 4:29
		Age36To40: {Min: 148, Max: 289, MinPts: 40, MaxPts: 100}, // 2:28 - 4:49
		Age41To45: {Min: 156, Max: 303, MinPts: 40, MaxPts: 100}, // 2:36 - 5:03
		Age46To50: {Min: 164, Max: 323, MinPts: 40, MaxPts: 100}, // 2:44 - 5:23
		Age51Plus: {Min: 176, Max: 350, MinPts: 40, MaxPts: 100}, // 2:56 - 5:50
	},
	Female: {
		Age17To20: {Min: 181, Max: 330, MinPts: 40, MaxPts: 100}, // 3:01 - 5:30
		Age21To25: {Min: 182, Max: 333, MinPts: 40, MaxPts: 100}, // 3:02 - 5:33
		Age26To30: {Min: 188, Max: 347, MinPts: 40, MaxPts: 100}, // 3:08 - 5:47
		Age31To35: {Min: 198, Max: 369, MinPts: 40, MaxPts: 100}, // 3:18 - 6:09
		Age36To40: {Min: 210, Max: 396, MinPts: 40, MaxPts: 100}, // 3:30 - 6:36
		Age41To45: {Min: 222, Max: 420, MinPts: 40, MaxPts: 100}, // 3:42 - 7:00
		Age46To50: {Min: 235, Max: 446, MinPts: 40, MaxPts: 100}, // 3:55 - 7:26
		Age51Plus: {Min: 253, Max: 480, MinPts: 40, MaxPts: 100}, // 4:13 - 8:00
	},
}
