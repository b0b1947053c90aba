// Package disks lists candidate target devices for disk options.
//
// The Scanner looks at the top level of a device directory (normally /dev)
// for block devices whose names start with a known disk prefix:
//
//	sd*    SCSI/SATA/USB disks
//	hd*    legacy IDE disks
//	nvme*  NVMe namespaces and partitions
//	vd*    virtio disks
//
// When nothing is found, for example inside a container or on a system
// without /dev, the fixed Fallback list is returned so the picker is never
// empty.
package disks
