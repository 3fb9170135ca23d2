// Package flashid identifies an SPI NOR flash by its JEDEC ID.
//
// An [Identifier] brings up a [Bus], acquires the chip-select through the
// board's [ChipSelectConfig], resets the flash (Enable Reset, Reset Device),
// waits for it to settle and reads the manufacturer, memory type and capacity
// bytes. The manufacturer code is looked up in [Vendors].
//
// # References:
//
// SPI Flash
//   - [JEP106]: JEDEC Standard Manufacturer's Identification Code (https://www.jedec.org/standards-documents/docs/jep-106ab)
//   - [N25Q32]: N25Q032A Micron Serial NOR Flash Memory datasheet (could not find the official public URL)
//   - [W25Q128]: W25Q128JV-DTR Winbond Serial Flash Memory (https://www.winbond.com/resource-files/W25Q128JV_DTR%20RevD%2012232024%20Plus.pdf)
//   - [GD25Q128]: GD25Q128E GigaDevice Uniform Sector Dual and Quad Serial Flash datasheet
//   - [MX25L128]: MX25L12833F Macronix Serial NOR Flash datasheet
//
// FTDI (https://ftdichip.com/document/application-notes/)
//   - [FTDI-AN_114]: Interfacing FT2232H Hi-Speed Devices To SPI Bus (https://ftdichip.com/wp-content/uploads/2020/08/AN_114_FTDI_Hi_Speed_USB_To_SPI_Example.pdf)
//   - [FTDI-AN_135]: FTDI MPSSE Basics (https://ftdichip.com/wp-content/uploads/2020/08/AN_135_MPSSE_Basics.pdf)
package flashid
