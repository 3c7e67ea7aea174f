package cube

// RenderOLL returns an SVG document showing the orientation of each grid position and the edge stickers.
func RenderOLL(desc FaceDescriptor, cfg SizeConfig) string {
	d := newDocument(cfg)
	d.bigSquare(cfg)
	d.grid(cfg, func(i int) string {
		return fillForOrientation(desc[i])
	})
	for i, o := range desc {
		renderSticker(d, i, o, cfg)
	}
	return d.String()
}

func fillForOrientation(o Orientation) string {
	switch o {
	case Face:
		return "yellow"
	case Empty:
		return "gray"
	}
	return "white"
}

func renderSticker(d *document, i int, o Orientation, cfg SizeConfig) {
	row, col := i/3, i%3
	cubie, sticker := cfg.CubieSize(), cfg.StickerWidth()
	switch o {
	case Up:
		d.rect(RowOrColStart(col, cfg), 0, cubie, sticker, "yellow")
	case Down:
		d.rect(RowOrColStart(col, cfg), outerBand(cfg), cubie, sticker, "yellow")
	case Left:
		d.rect(0, RowOrColStart(row, cfg), sticker, cubie, "yellow")
	case Right:
		d.rect(outerBand(cfg), RowOrColStart(row, cfg), sticker, cubie, "yellow")
	}
}
