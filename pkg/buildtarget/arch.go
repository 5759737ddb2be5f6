package buildtarget

// Arch is the target CPU architecture, matching cfg(target_arch).
//
// Values outside the declared constants are architectures this package does
// not know yet. They are carried verbatim in lower case and report
// IsKnown() == false.
type Arch string

const (
	// ArchAArch64 is the ARMv8 64-bit architecture.
	ArchAArch64 Arch = "aarch64"
	// ArchAMDGPU is the AMD GPU architecture.
	ArchAMDGPU Arch = "amdgpu"
	// ArchARM is the 32-bit ARM architecture.
	ArchARM Arch = "arm"
	// ArchARM64EC is ARM64 with the Windows Emulation Compatible ABI.
	ArchARM64EC Arch = "arm64ec"
	// ArchAVR is the AVR 8-bit microcontroller architecture.
	ArchAVR Arch = "avr"
	// ArchBPF is the Berkeley Packet Filter virtual machine.
	ArchBPF Arch = "bpf"
	// ArchCSKY is the C-SKY CPU architecture.
	ArchCSKY Arch = "csky"
	// ArchHexagon is the Qualcomm Hexagon DSP architecture.
	ArchHexagon Arch = "hexagon"
	// ArchLoongArch64 is the LoongArch 64-bit architecture.
	ArchLoongArch64 Arch = "loongarch64"
	// ArchM68k is the Motorola 68k architecture.
	ArchM68k Arch = "m68k"
	// ArchMIPS is the 32-bit MIPS architecture.
	ArchMIPS Arch = "mips"
	// ArchMIPS32R6 is MIPS 32-bit Release 6.
	ArchMIPS32R6 Arch = "mips32r6"
	// ArchMIPS64 is the 64-bit MIPS architecture.
	ArchMIPS64 Arch = "mips64"
	// ArchMIPS64R6 is MIPS 64-bit Release 6.
	ArchMIPS64R6 Arch = "mips64r6"
	// ArchMSP430 is the 16-bit MSP430 microcontroller architecture.
	ArchMSP430 Arch = "msp430"
	// ArchNVPTX64 is the 64-bit NVIDIA PTX virtual architecture.
	ArchNVPTX64 Arch = "nvptx64"
	// ArchPowerPC is the 32-bit POWER architecture.
	ArchPowerPC Arch = "powerpc"
	// ArchPowerPC64 is the 64-bit POWER architecture.
	ArchPowerPC64 Arch = "powerpc64"
	// ArchRISCV32 is 32-bit RISC-V.
	ArchRISCV32 Arch = "riscv32"
	// ArchRISCV64 is 64-bit RISC-V.
	ArchRISCV64 Arch = "riscv64"
	// ArchS390X is the 64-bit IBM z/Architecture.
	ArchS390X Arch = "s390x"
	// ArchSPARC is the 32-bit SPARC architecture.
	ArchSPARC Arch = "sparc"
	// ArchSPARC64 is the 64-bit SPARC architecture.
	ArchSPARC64 Arch = "sparc64"
	// ArchWasm32 is 32-bit WebAssembly.
	ArchWasm32 Arch = "wasm32"
	// ArchWasm64 is 64-bit WebAssembly.
	ArchWasm64 Arch = "wasm64"
	// ArchX86 is 32-bit x86.
	ArchX86 Arch = "x86"
	// ArchX86_64 is x86-64 (AMD64).
	ArchX86_64 Arch = "x86_64"
	// ArchXtensa is the Xtensa architecture found in many embedded parts.
	ArchXtensa Arch = "xtensa"
)

var arches = newEnum(
	ArchAArch64, ArchAMDGPU, ArchARM, ArchARM64EC, ArchAVR, ArchBPF, ArchCSKY,
	ArchHexagon, ArchLoongArch64, ArchM68k, ArchMIPS, ArchMIPS32R6, ArchMIPS64,
	ArchMIPS64R6, ArchMSP430, ArchNVPTX64, ArchPowerPC, ArchPowerPC64,
	ArchRISCV32, ArchRISCV64, ArchS390X, ArchSPARC, ArchSPARC64, ArchWasm32,
	ArchWasm64, ArchX86, ArchX86_64, ArchXtensa,
)

// ParseArch classifies s case-insensitively. It never fails: unknown input
// yields an Arch holding the lower-cased string.
func ParseArch(s string) Arch {
	return arches.parse(s)
}

// KnownArches returns the named architectures in declaration order.
func KnownArches() []Arch {
	return arches.list()
}

// String returns the canonical cfg(target_arch) string.
func (a Arch) String() string {
	return string(a)
}

// IsKnown reports whether a is one of the named architectures.
func (a Arch) IsKnown() bool {
	return arches.known(a)
}

// Compare orders named architectures by declaration and unknown ones after
// them by name.
func (a Arch) Compare(b Arch) int {
	return arches.compare(a, b)
}

// Suggest returns the named architecture closest to an unrecognized a, if
// one is close enough to be a likely typo.
func (a Arch) Suggest() (Arch, bool) {
	return arches.suggest(a)
}

// UnmarshalText decodes text through ParseArch.
func (a *Arch) UnmarshalText(text []byte) error {
	*a = ParseArch(string(text))
	return nil
}
