//go:build linux

package framebuffer

import (
	"encoding/binary"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/riv/internal/errors"
)

// linux/fb.h
const (
	ioctlGetVariableScreenInfo = 0x4600 // FBIOGET_VSCREENINFO
	ioctlGetFixedScreenInfo    = 0x4602 // FBIOGET_FSCREENINFO
)

type fixedScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

type bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

type variableScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// device is a memory mapped framebuffer device. Its previous contents are
// restored on close.
type device struct {
	file  *os.File
	finfo fixedScreenInfo
	vinfo variableScreenInfo
	data  []byte
	saved []byte
}

// openDevice opens the framebuffer device, maps it to memory and saves its
// current contents.
func openDevice(name string) (*device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.New(err)
	}
	d := &device{file: f}
	if err := ioctl(f.Fd(), ioctlGetFixedScreenInfo, unsafe.Pointer(&d.finfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := ioctl(f.Fd(), ioctlGetVariableScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	switch d.vinfo.BitsPerPixel {
	case 16, 24, 32:
	default:
		_ = f.Close()
		return nil, errors.Errorf(`unsupported framebuffer depth: %d bits per pixel`, d.vinfo.BitsPerPixel)
	}
	pageOffset := uint32(d.finfo.SmemStart & uintptr(unix.Getpagesize()-1))
	d.data, err = unix.Mmap(int(f.Fd()), 0, int(d.finfo.SmemLen+pageOffset), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, errors.New(err)
	}
	d.saved = append([]byte(nil), d.data...)
	return d, nil
}

func (d *device) Close() error {
	if d == nil || d.data == nil {
		return nil
	}
	copy(d.data, d.saved)
	err := errors.Join(unix.Munmap(d.data), d.file.Close())
	d.data = nil
	return err
}

// Size returns the visible resolution.
func (d *device) Size() image.Point {
	return image.Pt(int(d.vinfo.XRes), int(d.vinfo.YRes))
}

func (d *device) bytesPerPixel() int { return int(d.vinfo.BitsPerPixel) / 8 }

func (d *device) offset(x, y int) int {
	return (int(d.vinfo.XOffset)+x)*d.bytesPerPixel() + (int(d.vinfo.YOffset)+y)*int(d.finfo.LineLength)
}

// pixel encodes an opaque color in the device's pixel format.
func (d *device) pixel(r, g, b uint8) uint32 {
	channel := func(v uint8, f bitfield) uint32 {
		if f.Length == 0 {
			return 0
		}
		return (uint32(v) >> (8 - min(f.Length, 8))) << f.Offset
	}
	return channel(r, d.vinfo.Red) | channel(g, d.vinfo.Green) | channel(b, d.vinfo.Blue) |
		channel(0xff, d.vinfo.Transp)
}

// clear fills the visible area with black.
func (d *device) clear() {
	bpp := d.bytesPerPixel()
	size := d.Size()
	for y := 0; y < size.Y; y++ {
		i := d.offset(0, y)
		clear(d.data[i : i+size.X*bpp])
	}
}

// blit copies tightly packed RGBA pixels of the given size to pos.
// Pixels outside the screen are skipped.
func (d *device) blit(pix []byte, size, pos image.Point) {
	area := image.Rectangle{Min: pos, Max: pos.Add(size)}.Intersect(image.Rectangle{Max: d.Size()})
	if area.Empty() {
		return
	}
	bpp := d.bytesPerPixel()
	var px [4]byte
	for y := area.Min.Y; y < area.Max.Y; y++ {
		s := pix[((y-pos.Y)*size.X+area.Min.X-pos.X)*4:]
		i := d.offset(area.Min.X, y)
		for x := 0; x < area.Dx(); x++ {
			binary.LittleEndian.PutUint32(px[:], d.pixel(s[4*x], s[4*x+1], s[4*x+2]))
			copy(d.data[i+x*bpp:i+(x+1)*bpp], px[:bpp])
		}
	}
}

func ioctl(fd uintptr, cmd uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(data))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`IOCTL`, errno))
	}
	return nil
}
