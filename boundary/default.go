package boundary

// Default is the registry behind the exported C functions. It is replaced
// once at library load from the environment configuration.
var Default = New()

func Create() Handle                                { return Default.Create() }
func Free(h Handle)                                 { Default.Free(h) }
func Write(h Handle, src []byte)                    { Default.Write(h, src) }
func ReadHashInto(h Handle, target []byte, off int) { Default.ReadHashInto(h, target, off) }
func Count(h Handle) uint64                         { return Default.Count(h) }
func Reset(h Handle)                                { Default.Reset(h) }
func HashInto(input, output []byte, off int)        { Default.HashInto(input, output, off) }
