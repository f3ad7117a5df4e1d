package wgpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device errors.
var (
	// ErrBackendUnavailable is returned when no HAL backend is compiled in.
	ErrBackendUnavailable = errors.New("wgpu: vulkan backend not available")

	// ErrNoAdapter is returned when adapter enumeration comes up empty.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")
)

// Device bundles the HAL device and queue, either owned (created via
// NewDevice) or borrowed from a host application through a shared
// context provider.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	external bool
}

// NewDevice opens its own HAL device on the Vulkan backend, preferring a
// discrete or integrated GPU.
func NewDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrBackendUnavailable
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	log.Printf("wgpu: device initialized (%s)", selected.Info.Name)
	return &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
	}, nil
}

// FromProvider borrows the device and queue of a host application. The
// provider must expose HalDevice() any and HalQueue() any returning the
// HAL types; Close never destroys a borrowed device.
func FromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	return &Device{device: device, queue: queue, external: true}, nil
}

// HAL returns the underlying device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
}

// Close destroys the device and instance when owned. Borrowed devices
// stay alive; only the wrapper is cleared.
func (d *Device) Close() {
	if !d.external && d.device != nil {
		d.device.Destroy()
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	d.device = nil
	d.queue = nil
}
