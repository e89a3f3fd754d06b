package components

import (
	"github.com/automoto/joyplat/render"
	"github.com/yohamta/donburi"
)

type FrameData struct {
	Buffer *render.Framebuffer
}

var Frame = donburi.NewComponentType[FrameData]()
