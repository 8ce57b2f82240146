package ili9163c

const ( // ILI9163C Datasheet, ch. 10
	CMD_NOP     uint8 = 0x00 // No Operation
	CMD_SWRESET       = 0x01 // Software Reset

	CMD_RDDIDIF   = 0x04 // Read Display Identification Information
	CMD_RDDST     = 0x09 // Read Display Status
	CMD_RDDPM     = 0x0a // Read Display Power Mode
	CMD_RDDMADCTL = 0x0b // Read Display MADCTL
	CMD_RDDCOLMOD = 0x0c // Read Display Pixel Format

	CMD_SLPIN  = 0x10 // Enter Sleep Mode
	CMD_SLPOUT = 0x11 // Sleep Out
	CMD_PTLON  = 0x12 // Partial Mode ON
	CMD_NORON  = 0x13 // Normal Display Mode ON
	CMD_INVOFF = 0x20 // Display Inversion OFF
	CMD_INVON  = 0x21 // Display Inversion ON
	CMD_GAMSET = 0x26 // Gamma Set
	CMD_DISOFF = 0x28 // Display OFF
	CMD_DISON  = 0x29 // Display ON

	CMD_CASET    = 0x2a // Column Address Set
	CMD_PASET    = 0x2b // Page Address Set
	CMD_RAMWR    = 0x2c // Memory Write
	CMD_RGBSET   = 0x2d // Color Set
	CMD_PLTAR    = 0x30 // Partial Area
	CMD_VSCRDEF  = 0x33 // Vertical Scrolling Definition
	CMD_TEOFF    = 0x34 // Tearing Effect Line OFF
	CMD_TEON     = 0x35 // Tearing Effect Line ON
	CMD_MADCTL   = 0x36 // Memory Access Control
	CMD_VSCRSADD = 0x37 // Vertical Scrolling Start Address
	CMD_IDMOFF   = 0x38 // Idle Mode OFF
	CMD_IDMON    = 0x39 // Idle Mode ON
	CMD_PIXFMT   = 0x3a // COLMOD: Interface Pixel Format

	CMD_FRMCTR1 = 0xb1 // Frame Rate Control (In Normal Mode/Full Colors)
	CMD_FRMCTR2 = 0xb2 // Frame Rate Control (In Idle Mode/8 colors)
	CMD_FRMCTR3 = 0xb3 // Frame Rate control (In Partial Mode/Full Colors)
	CMD_INVCTR  = 0xb4 // Display Inversion Control
	CMD_RGBBLK  = 0xb5 // RGB Interface Blanking Porch setting
	CMD_DISCTRL = 0xb6 // Display Function Control
	CMD_SDRVDIR = 0xb7 // Source Driver Direction Control
	CMD_GDRVDIR = 0xb8 // Gate Driver Direction Control

	CMD_PWCTR1  = 0xc0 // Power Control 1
	CMD_PWCTR2  = 0xc1 // Power Control 2
	CMD_PWCTR3  = 0xc2 // Power Control 3
	CMD_PWCTR4  = 0xc3 // Power Control 4
	CMD_PWCTR5  = 0xc4 // Power Control 5
	CMD_VMCTR1  = 0xc5 // VCOM Control 1
	CMD_VMCTR2  = 0xc6 // VCOM Control 2
	CMD_VMOFCTR = 0xc7 // VCOM Offset Control

	CMD_GAMCTRP = 0xe0 // Positive Gamma Correction Setting
	CMD_GAMCTRN = 0xe1 // Negative Gamma Correction Setting
	CMD_GAMRSEL = 0xf2 // Gamma Adjustment Enable
)

const (
	MADCTL_MY  uint8 = 0x80 // Row Address Order         1 = address bottom to top
	MADCTL_MX        = 0x40 // Column Address Order      1 = address right to left
	MADCTL_MV        = 0x20 // Row/Column Exchange       1 = mirror and rotate 90 ccw
	MADCTL_ML        = 0x10 // Vertical Refresh Order    1 = refresh bottom to top
	MADCTL_BGR       = 0x08 // RGB-BGR Order             1 = Blue-Green-Red pixel order
	MADCTL_MH        = 0x04 // Horizontal Refresh Order  1 = refresh right to left
)

const (
	PIXFMT_16BPP uint8 = 0x05 // DBI: 16 bits / pixel
	PIXFMT_18BPP       = 0x06 // DBI: 18 bits / pixel
)

var (
	gammaPos = []uint8{0x36, 0x29, 0x12, 0x22, 0x1c, 0x15, 0x42, 0xb7, 0x2f, 0x13, 0x12, 0x0a, 0x11, 0x0b, 0x06}
	gammaNeg = []uint8{0x09, 0x16, 0x2d, 0x0d, 0x13, 0x15, 0x40, 0x48, 0x53, 0x0c, 0x1d, 0x25, 0x2e, 0x34, 0x39}
)
