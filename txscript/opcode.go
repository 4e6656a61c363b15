// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// An opcode defines the information related to a txscript opcode. length is
// the number of bytes the opcode occupies in a script, including its data.
// Negative lengths denote a variable-length push whose length header occupies
// that many bytes.
type opcode struct {
	value  byte
	name   string
	length int
}

// These constants are the values of the official opcodes used on the btc wiki,
// in bitcoin core and in most if not all other references and software related
// to handling scripts.
const (
	Op0         = 0x00 // 0
	OpFalse     = 0x00 // 0 - AKA Op0
	OpData1     = 0x01 // 1
	OpData2     = 0x02 // 2
	OpData3     = 0x03 // 3
	OpData4     = 0x04 // 4
	OpData5     = 0x05 // 5
	OpData6     = 0x06 // 6
	OpData7     = 0x07 // 7
	OpData8     = 0x08 // 8
	OpData9     = 0x09 // 9
	OpData10    = 0x0a // 10
	OpData11    = 0x0b // 11
	OpData12    = 0x0c // 12
	OpData13    = 0x0d // 13
	OpData14    = 0x0e // 14
	OpData15    = 0x0f // 15
	OpData16    = 0x10 // 16
	OpData17    = 0x11 // 17
	OpData18    = 0x12 // 18
	OpData19    = 0x13 // 19
	OpData20    = 0x14 // 20
	OpData21    = 0x15 // 21
	OpData22    = 0x16 // 22
	OpData23    = 0x17 // 23
	OpData24    = 0x18 // 24
	OpData25    = 0x19 // 25
	OpData26    = 0x1a // 26
	OpData27    = 0x1b // 27
	OpData28    = 0x1c // 28
	OpData29    = 0x1d // 29
	OpData30    = 0x1e // 30
	OpData31    = 0x1f // 31
	OpData32    = 0x20 // 32
	OpData33    = 0x21 // 33
	OpData34    = 0x22 // 34
	OpData35    = 0x23 // 35
	OpData36    = 0x24 // 36
	OpData37    = 0x25 // 37
	OpData38    = 0x26 // 38
	OpData39    = 0x27 // 39
	OpData40    = 0x28 // 40
	OpData41    = 0x29 // 41
	OpData42    = 0x2a // 42
	OpData43    = 0x2b // 43
	OpData44    = 0x2c // 44
	OpData45    = 0x2d // 45
	OpData46    = 0x2e // 46
	OpData47    = 0x2f // 47
	OpData48    = 0x30 // 48
	OpData49    = 0x31 // 49
	OpData50    = 0x32 // 50
	OpData51    = 0x33 // 51
	OpData52    = 0x34 // 52
	OpData53    = 0x35 // 53
	OpData54    = 0x36 // 54
	OpData55    = 0x37 // 55
	OpData56    = 0x38 // 56
	OpData57    = 0x39 // 57
	OpData58    = 0x3a // 58
	OpData59    = 0x3b // 59
	OpData60    = 0x3c // 60
	OpData61    = 0x3d // 61
	OpData62    = 0x3e // 62
	OpData63    = 0x3f // 63
	OpData64    = 0x40 // 64
	OpData65    = 0x41 // 65
	OpData66    = 0x42 // 66
	OpData67    = 0x43 // 67
	OpData68    = 0x44 // 68
	OpData69    = 0x45 // 69
	OpData70    = 0x46 // 70
	OpData71    = 0x47 // 71
	OpData72    = 0x48 // 72
	OpData73    = 0x49 // 73
	OpData74    = 0x4a // 74
	OpData75    = 0x4b // 75
	OpPushData1 = 0x4c // 76
	OpPushData2 = 0x4d // 77
	OpPushData4 = 0x4e // 78
	Op1Negate   = 0x4f // 79
	OpReserved  = 0x50 // 80
	Op1         = 0x51 // 81 - AKA OpTrue
	OpTrue      = 0x51 // 81
	Op2         = 0x52 // 82
	Op3         = 0x53 // 83
	Op4         = 0x54 // 84
	Op5         = 0x55 // 85
	Op6         = 0x56 // 86
	Op7         = 0x57 // 87
	Op8         = 0x58 // 88
	Op9         = 0x59 // 89
	Op10        = 0x5a // 90
	Op11        = 0x5b // 91
	Op12        = 0x5c // 92
	Op13        = 0x5d // 93
	Op14        = 0x5e // 94
	Op15        = 0x5f // 95
	Op16        = 0x60 // 96
	OpNop       = 0x61 // 97
	OpVer       = 0x62 // 98
	OpIf        = 0x63 // 99
	OpNotIf     = 0x64 // 100
	OpVerIf     = 0x65 // 101
	OpVerNotIf  = 0x66 // 102
	OpElse      = 0x67 // 103
	OpEndIf     = 0x68 // 104
	OpVerify    = 0x69 // 105
	OpReturn    = 0x6a // 106

	OpToAltStack   = 0x6b // 107
	OpFromAltStack = 0x6c // 108
	Op2Drop        = 0x6d // 109
	Op2Dup         = 0x6e // 110
	Op3Dup         = 0x6f // 111
	Op2Over        = 0x70 // 112
	Op2Rot         = 0x71 // 113
	Op2Swap        = 0x72 // 114
	OpIfDup        = 0x73 // 115
	OpDepth        = 0x74 // 116
	OpDrop         = 0x75 // 117
	OpDup          = 0x76 // 118
	OpNip          = 0x77 // 119
	OpOver         = 0x78 // 120
	OpPick         = 0x79 // 121
	OpRoll         = 0x7a // 122
	OpRot          = 0x7b // 123
	OpSwap         = 0x7c // 124
	OpTuck         = 0x7d // 125

	OpCat    = 0x7e // 126
	OpSubStr = 0x7f // 127
	OpLeft   = 0x80 // 128
	OpRight  = 0x81 // 129
	OpSize   = 0x82 // 130

	OpInvert      = 0x83 // 131
	OpAnd         = 0x84 // 132
	OpOr          = 0x85 // 133
	OpXor         = 0x86 // 134
	OpEqual       = 0x87 // 135
	OpEqualVerify = 0x88 // 136
	OpReserved1   = 0x89 // 137
	OpReserved2   = 0x8a // 138

	Op1Add               = 0x8b // 139
	Op1Sub               = 0x8c // 140
	Op2Mul               = 0x8d // 141
	Op2Div               = 0x8e // 142
	OpNegate             = 0x8f // 143
	OpAbs                = 0x90 // 144
	OpNot                = 0x91 // 145
	Op0NotEqual          = 0x92 // 146
	OpAdd                = 0x93 // 147
	OpSub                = 0x94 // 148
	OpMul                = 0x95 // 149
	OpDiv                = 0x96 // 150
	OpMod                = 0x97 // 151
	OpLShift             = 0x98 // 152
	OpRShift             = 0x99 // 153
	OpBoolAnd            = 0x9a // 154
	OpBoolOr             = 0x9b // 155
	OpNumEqual           = 0x9c // 156
	OpNumEqualVerify     = 0x9d // 157
	OpNumNotEqual        = 0x9e // 158
	OpLessThan           = 0x9f // 159
	OpGreaterThan        = 0xa0 // 160
	OpLessThanOrEqual    = 0xa1 // 161
	OpGreaterThanOrEqual = 0xa2 // 162
	OpMin                = 0xa3 // 163
	OpMax                = 0xa4 // 164
	OpWithin             = 0xa5 // 165

	OpRipeMD160     = 0xa6 // 166
	OpSHA1          = 0xa7 // 167
	OpSHA256        = 0xa8 // 168
	OpHash160       = 0xa9 // 169
	OpHash256       = 0xaa // 170
	OpCodeSeparator = 0xab // 171

	OpCheckSig            = 0xac // 172
	OpCheckSigVerify      = 0xad // 173
	OpCheckMultiSig       = 0xae // 174
	OpCheckMultiSigVerify = 0xaf // 175

	OpNop1                = 0xb0 // 176
	OpNop2                = 0xb1 // 177
	OpCheckLockTimeVerify = 0xb1 // 177 - AKA OpNop2
	OpNop3                = 0xb2 // 178
	OpCheckSequenceVerify = 0xb2 // 178 - AKA OpNop3
	OpNop4                = 0xb3 // 179
	OpNop5                = 0xb4 // 180
	OpNop6                = 0xb5 // 181
	OpNop7                = 0xb6 // 182
	OpNop8                = 0xb7 // 183
	OpNop9                = 0xb8 // 184
	OpNop10               = 0xb9 // 185

	OpCheckSigAdd   = 0xba // 186
	OpUnknown187    = 0xbb // 187
	OpUnknown188    = 0xbc // 188
	OpUnknown189    = 0xbd // 189
	OpUnknown190    = 0xbe // 190
	OpUnknown191    = 0xbf // 191
	OpUnknown192    = 0xc0 // 192
	OpUnknown193    = 0xc1 // 193
	OpUnknown194    = 0xc2 // 194
	OpUnknown195    = 0xc3 // 195
	OpUnknown196    = 0xc4 // 196
	OpUnknown197    = 0xc5 // 197
	OpUnknown198    = 0xc6 // 198
	OpUnknown199    = 0xc7 // 199
	OpUnknown200    = 0xc8 // 200
	OpUnknown201    = 0xc9 // 201
	OpUnknown202    = 0xca // 202
	OpUnknown203    = 0xcb // 203
	OpUnknown204    = 0xcc // 204
	OpUnknown205    = 0xcd // 205
	OpUnknown206    = 0xce // 206
	OpUnknown207    = 0xcf // 207
	OpUnknown208    = 0xd0 // 208
	OpUnknown209    = 0xd1 // 209
	OpUnknown210    = 0xd2 // 210
	OpUnknown211    = 0xd3 // 211
	OpUnknown212    = 0xd4 // 212
	OpUnknown213    = 0xd5 // 213
	OpUnknown214    = 0xd6 // 214
	OpUnknown215    = 0xd7 // 215
	OpUnknown216    = 0xd8 // 216
	OpUnknown217    = 0xd9 // 217
	OpUnknown218    = 0xda // 218
	OpUnknown219    = 0xdb // 219
	OpUnknown220    = 0xdc // 220
	OpUnknown221    = 0xdd // 221
	OpUnknown222    = 0xde // 222
	OpUnknown223    = 0xdf // 223
	OpUnknown224    = 0xe0 // 224
	OpUnknown225    = 0xe1 // 225
	OpUnknown226    = 0xe2 // 226
	OpUnknown227    = 0xe3 // 227
	OpUnknown228    = 0xe4 // 228
	OpUnknown229    = 0xe5 // 229
	OpUnknown230    = 0xe6 // 230
	OpUnknown231    = 0xe7 // 231
	OpUnknown232    = 0xe8 // 232
	OpUnknown233    = 0xe9 // 233
	OpUnknown234    = 0xea // 234
	OpUnknown235    = 0xeb // 235
	OpUnknown236    = 0xec // 236
	OpUnknown237    = 0xed // 237
	OpUnknown238    = 0xee // 238
	OpUnknown239    = 0xef // 239
	OpUnknown240    = 0xf0 // 240
	OpUnknown241    = 0xf1 // 241
	OpUnknown242    = 0xf2 // 242
	OpUnknown243    = 0xf3 // 243
	OpUnknown244    = 0xf4 // 244
	OpUnknown245    = 0xf5 // 245
	OpUnknown246    = 0xf6 // 246
	OpUnknown247    = 0xf7 // 247
	OpUnknown248    = 0xf8 // 248
	OpUnknown249    = 0xf9 // 249
	OpSmallInteger  = 0xfa // 250 - bitcoin core internal
	OpPubKeys       = 0xfb // 251 - bitcoin core internal
	OpUnknown252    = 0xfc // 252
	OpPubKeyHash    = 0xfd // 253 - bitcoin core internal
	OpPubKey        = 0xfe // 254 - bitcoin core internal
	OpInvalidOpCode = 0xff // 255 - bitcoin core internal
)

// opcodeArray holds details about all possible opcodes such as how many bytes
// the opcode and any associated data should take and its human-readable name.
var opcodeArray = [256]opcode{
	// Data push opcodes.
	OpFalse:     {OpFalse, "OP_0", 1},
	OpData1:     {OpData1, "OP_PUSHBYTES_1", 2},
	OpData2:     {OpData2, "OP_PUSHBYTES_2", 3},
	OpData3:     {OpData3, "OP_PUSHBYTES_3", 4},
	OpData4:     {OpData4, "OP_PUSHBYTES_4", 5},
	OpData5:     {OpData5, "OP_PUSHBYTES_5", 6},
	OpData6:     {OpData6, "OP_PUSHBYTES_6", 7},
	OpData7:     {OpData7, "OP_PUSHBYTES_7", 8},
	OpData8:     {OpData8, "OP_PUSHBYTES_8", 9},
	OpData9:     {OpData9, "OP_PUSHBYTES_9", 10},
	OpData10:    {OpData10, "OP_PUSHBYTES_10", 11},
	OpData11:    {OpData11, "OP_PUSHBYTES_11", 12},
	OpData12:    {OpData12, "OP_PUSHBYTES_12", 13},
	OpData13:    {OpData13, "OP_PUSHBYTES_13", 14},
	OpData14:    {OpData14, "OP_PUSHBYTES_14", 15},
	OpData15:    {OpData15, "OP_PUSHBYTES_15", 16},
	OpData16:    {OpData16, "OP_PUSHBYTES_16", 17},
	OpData17:    {OpData17, "OP_PUSHBYTES_17", 18},
	OpData18:    {OpData18, "OP_PUSHBYTES_18", 19},
	OpData19:    {OpData19, "OP_PUSHBYTES_19", 20},
	OpData20:    {OpData20, "OP_PUSHBYTES_20", 21},
	OpData21:    {OpData21, "OP_PUSHBYTES_21", 22},
	OpData22:    {OpData22, "OP_PUSHBYTES_22", 23},
	OpData23:    {OpData23, "OP_PUSHBYTES_23", 24},
	OpData24:    {OpData24, "OP_PUSHBYTES_24", 25},
	OpData25:    {OpData25, "OP_PUSHBYTES_25", 26},
	OpData26:    {OpData26, "OP_PUSHBYTES_26", 27},
	OpData27:    {OpData27, "OP_PUSHBYTES_27", 28},
	OpData28:    {OpData28, "OP_PUSHBYTES_28", 29},
	OpData29:    {OpData29, "OP_PUSHBYTES_29", 30},
	OpData30:    {OpData30, "OP_PUSHBYTES_30", 31},
	OpData31:    {OpData31, "OP_PUSHBYTES_31", 32},
	OpData32:    {OpData32, "OP_PUSHBYTES_32", 33},
	OpData33:    {OpData33, "OP_PUSHBYTES_33", 34},
	OpData34:    {OpData34, "OP_PUSHBYTES_34", 35},
	OpData35:    {OpData35, "OP_PUSHBYTES_35", 36},
	OpData36:    {OpData36, "OP_PUSHBYTES_36", 37},
	OpData37:    {OpData37, "OP_PUSHBYTES_37", 38},
	OpData38:    {OpData38, "OP_PUSHBYTES_38", 39},
	OpData39:    {OpData39, "OP_PUSHBYTES_39", 40},
	OpData40:    {OpData40, "OP_PUSHBYTES_40", 41},
	OpData41:    {OpData41, "OP_PUSHBYTES_41", 42},
	OpData42:    {OpData42, "OP_PUSHBYTES_42", 43},
	OpData43:    {OpData43, "OP_PUSHBYTES_43", 44},
	OpData44:    {OpData44, "OP_PUSHBYTES_44", 45},
	OpData45:    {OpData45, "OP_PUSHBYTES_45", 46},
	OpData46:    {OpData46, "OP_PUSHBYTES_46", 47},
	OpData47:    {OpData47, "OP_PUSHBYTES_47", 48},
	OpData48:    {OpData48, "OP_PUSHBYTES_48", 49},
	OpData49:    {OpData49, "OP_PUSHBYTES_49", 50},
	OpData50:    {OpData50, "OP_PUSHBYTES_50", 51},
	OpData51:    {OpData51, "OP_PUSHBYTES_51", 52},
	OpData52:    {OpData52, "OP_PUSHBYTES_52", 53},
	OpData53:    {OpData53, "OP_PUSHBYTES_53", 54},
	OpData54:    {OpData54, "OP_PUSHBYTES_54", 55},
	OpData55:    {OpData55, "OP_PUSHBYTES_55", 56},
	OpData56:    {OpData56, "OP_PUSHBYTES_56", 57},
	OpData57:    {OpData57, "OP_PUSHBYTES_57", 58},
	OpData58:    {OpData58, "OP_PUSHBYTES_58", 59},
	OpData59:    {OpData59, "OP_PUSHBYTES_59", 60},
	OpData60:    {OpData60, "OP_PUSHBYTES_60", 61},
	OpData61:    {OpData61, "OP_PUSHBYTES_61", 62},
	OpData62:    {OpData62, "OP_PUSHBYTES_62", 63},
	OpData63:    {OpData63, "OP_PUSHBYTES_63", 64},
	OpData64:    {OpData64, "OP_PUSHBYTES_64", 65},
	OpData65:    {OpData65, "OP_PUSHBYTES_65", 66},
	OpData66:    {OpData66, "OP_PUSHBYTES_66", 67},
	OpData67:    {OpData67, "OP_PUSHBYTES_67", 68},
	OpData68:    {OpData68, "OP_PUSHBYTES_68", 69},
	OpData69:    {OpData69, "OP_PUSHBYTES_69", 70},
	OpData70:    {OpData70, "OP_PUSHBYTES_70", 71},
	OpData71:    {OpData71, "OP_PUSHBYTES_71", 72},
	OpData72:    {OpData72, "OP_PUSHBYTES_72", 73},
	OpData73:    {OpData73, "OP_PUSHBYTES_73", 74},
	OpData74:    {OpData74, "OP_PUSHBYTES_74", 75},
	OpData75:    {OpData75, "OP_PUSHBYTES_75", 76},
	OpPushData1: {OpPushData1, "OP_PUSHDATA1", -1},
	OpPushData2: {OpPushData2, "OP_PUSHDATA2", -2},
	OpPushData4: {OpPushData4, "OP_PUSHDATA4", -4},
	Op1Negate:   {Op1Negate, "OP_1NEGATE", 1},
	OpReserved:  {OpReserved, "OP_RESERVED", 1},
	OpTrue:      {OpTrue, "OP_1", 1},
	Op2:         {Op2, "OP_2", 1},
	Op3:         {Op3, "OP_3", 1},
	Op4:         {Op4, "OP_4", 1},
	Op5:         {Op5, "OP_5", 1},
	Op6:         {Op6, "OP_6", 1},
	Op7:         {Op7, "OP_7", 1},
	Op8:         {Op8, "OP_8", 1},
	Op9:         {Op9, "OP_9", 1},
	Op10:        {Op10, "OP_10", 1},
	Op11:        {Op11, "OP_11", 1},
	Op12:        {Op12, "OP_12", 1},
	Op13:        {Op13, "OP_13", 1},
	Op14:        {Op14, "OP_14", 1},
	Op15:        {Op15, "OP_15", 1},
	Op16:        {Op16, "OP_16", 1},

	// Control opcodes.
	OpNop:      {OpNop, "OP_NOP", 1},
	OpVer:      {OpVer, "OP_VER", 1},
	OpIf:       {OpIf, "OP_IF", 1},
	OpNotIf:    {OpNotIf, "OP_NOTIF", 1},
	OpVerIf:    {OpVerIf, "OP_VERIF", 1},
	OpVerNotIf: {OpVerNotIf, "OP_VERNOTIF", 1},
	OpElse:     {OpElse, "OP_ELSE", 1},
	OpEndIf:    {OpEndIf, "OP_ENDIF", 1},
	OpVerify:   {OpVerify, "OP_VERIFY", 1},
	OpReturn:   {OpReturn, "OP_RETURN", 1},

	// Stack opcodes.
	OpToAltStack:   {OpToAltStack, "OP_TOALTSTACK", 1},
	OpFromAltStack: {OpFromAltStack, "OP_FROMALTSTACK", 1},
	Op2Drop:        {Op2Drop, "OP_2DROP", 1},
	Op2Dup:         {Op2Dup, "OP_2DUP", 1},
	Op3Dup:         {Op3Dup, "OP_3DUP", 1},
	Op2Over:        {Op2Over, "OP_2OVER", 1},
	Op2Rot:         {Op2Rot, "OP_2ROT", 1},
	Op2Swap:        {Op2Swap, "OP_2SWAP", 1},
	OpIfDup:        {OpIfDup, "OP_IFDUP", 1},
	OpDepth:        {OpDepth, "OP_DEPTH", 1},
	OpDrop:         {OpDrop, "OP_DROP", 1},
	OpDup:          {OpDup, "OP_DUP", 1},
	OpNip:          {OpNip, "OP_NIP", 1},
	OpOver:         {OpOver, "OP_OVER", 1},
	OpPick:         {OpPick, "OP_PICK", 1},
	OpRoll:         {OpRoll, "OP_ROLL", 1},
	OpRot:          {OpRot, "OP_ROT", 1},
	OpSwap:         {OpSwap, "OP_SWAP", 1},
	OpTuck:         {OpTuck, "OP_TUCK", 1},

	// Splice opcodes.
	OpCat:    {OpCat, "OP_CAT", 1},
	OpSubStr: {OpSubStr, "OP_SUBSTR", 1},
	OpLeft:   {OpLeft, "OP_LEFT", 1},
	OpRight:  {OpRight, "OP_RIGHT", 1},
	OpSize:   {OpSize, "OP_SIZE", 1},

	// Bitwise logic opcodes.
	OpInvert:      {OpInvert, "OP_INVERT", 1},
	OpAnd:         {OpAnd, "OP_AND", 1},
	OpOr:          {OpOr, "OP_OR", 1},
	OpXor:         {OpXor, "OP_XOR", 1},
	OpEqual:       {OpEqual, "OP_EQUAL", 1},
	OpEqualVerify: {OpEqualVerify, "OP_EQUALVERIFY", 1},
	OpReserved1:   {OpReserved1, "OP_RESERVED1", 1},
	OpReserved2:   {OpReserved2, "OP_RESERVED2", 1},

	// Numeric related opcodes.
	Op1Add:               {Op1Add, "OP_1ADD", 1},
	Op1Sub:               {Op1Sub, "OP_1SUB", 1},
	Op2Mul:               {Op2Mul, "OP_2MUL", 1},
	Op2Div:               {Op2Div, "OP_2DIV", 1},
	OpNegate:             {OpNegate, "OP_NEGATE", 1},
	OpAbs:                {OpAbs, "OP_ABS", 1},
	OpNot:                {OpNot, "OP_NOT", 1},
	Op0NotEqual:          {Op0NotEqual, "OP_0NOTEQUAL", 1},
	OpAdd:                {OpAdd, "OP_ADD", 1},
	OpSub:                {OpSub, "OP_SUB", 1},
	OpMul:                {OpMul, "OP_MUL", 1},
	OpDiv:                {OpDiv, "OP_DIV", 1},
	OpMod:                {OpMod, "OP_MOD", 1},
	OpLShift:             {OpLShift, "OP_LSHIFT", 1},
	OpRShift:             {OpRShift, "OP_RSHIFT", 1},
	OpBoolAnd:            {OpBoolAnd, "OP_BOOLAND", 1},
	OpBoolOr:             {OpBoolOr, "OP_BOOLOR", 1},
	OpNumEqual:           {OpNumEqual, "OP_NUMEQUAL", 1},
	OpNumEqualVerify:     {OpNumEqualVerify, "OP_NUMEQUALVERIFY", 1},
	OpNumNotEqual:        {OpNumNotEqual, "OP_NUMNOTEQUAL", 1},
	OpLessThan:           {OpLessThan, "OP_LESSTHAN", 1},
	OpGreaterThan:        {OpGreaterThan, "OP_GREATERTHAN", 1},
	OpLessThanOrEqual:    {OpLessThanOrEqual, "OP_LESSTHANOREQUAL", 1},
	OpGreaterThanOrEqual: {OpGreaterThanOrEqual, "OP_GREATERTHANOREQUAL", 1},
	OpMin:                {OpMin, "OP_MIN", 1},
	OpMax:                {OpMax, "OP_MAX", 1},
	OpWithin:             {OpWithin, "OP_WITHIN", 1},

	// Crypto opcodes.
	OpRipeMD160:     {OpRipeMD160, "OP_RIPEMD160", 1},
	OpSHA1:          {OpSHA1, "OP_SHA1", 1},
	OpSHA256:        {OpSHA256, "OP_SHA256", 1},
	OpHash160:       {OpHash160, "OP_HASH160", 1},
	OpHash256:       {OpHash256, "OP_HASH256", 1},
	OpCodeSeparator: {OpCodeSeparator, "OP_CODESEPARATOR", 1},
	OpCheckSig:      {OpCheckSig, "OP_CHECKSIG", 1},
	OpCheckSigVerify: {OpCheckSigVerify,
		"OP_CHECKSIGVERIFY", 1},
	OpCheckMultiSig: {OpCheckMultiSig, "OP_CHECKMULTISIG", 1},
	OpCheckMultiSigVerify: {OpCheckMultiSigVerify,
		"OP_CHECKMULTISIGVERIFY", 1},

	// Reserved opcodes.
	OpNop1:                {OpNop1, "OP_NOP1", 1},
	OpCheckLockTimeVerify: {OpCheckLockTimeVerify, "OP_CHECKLOCKTIMEVERIFY", 1},
	OpCheckSequenceVerify: {OpCheckSequenceVerify, "OP_CHECKSEQUENCEVERIFY", 1},
	OpNop4:                {OpNop4, "OP_NOP4", 1},
	OpNop5:                {OpNop5, "OP_NOP5", 1},
	OpNop6:                {OpNop6, "OP_NOP6", 1},
	OpNop7:                {OpNop7, "OP_NOP7", 1},
	OpNop8:                {OpNop8, "OP_NOP8", 1},
	OpNop9:                {OpNop9, "OP_NOP9", 1},
	OpNop10:               {OpNop10, "OP_NOP10", 1},

	OpCheckSigAdd: {OpCheckSigAdd, "OP_CHECKSIGADD", 1},

	// Undefined opcodes.
	OpUnknown187: {OpUnknown187, "OP_UNKNOWN187", 1},
	OpUnknown188: {OpUnknown188, "OP_UNKNOWN188", 1},
	OpUnknown189: {OpUnknown189, "OP_UNKNOWN189", 1},
	OpUnknown190: {OpUnknown190, "OP_UNKNOWN190", 1},
	OpUnknown191: {OpUnknown191, "OP_UNKNOWN191", 1},
	OpUnknown192: {OpUnknown192, "OP_UNKNOWN192", 1},
	OpUnknown193: {OpUnknown193, "OP_UNKNOWN193", 1},
	OpUnknown194: {OpUnknown194, "OP_UNKNOWN194", 1},
	OpUnknown195: {OpUnknown195, "OP_UNKNOWN195", 1},
	OpUnknown196: {OpUnknown196, "OP_UNKNOWN196", 1},
	OpUnknown197: {OpUnknown197, "OP_UNKNOWN197", 1},
	OpUnknown198: {OpUnknown198, "OP_UNKNOWN198", 1},
	OpUnknown199: {OpUnknown199, "OP_UNKNOWN199", 1},
	OpUnknown200: {OpUnknown200, "OP_UNKNOWN200", 1},
	OpUnknown201: {OpUnknown201, "OP_UNKNOWN201", 1},
	OpUnknown202: {OpUnknown202, "OP_UNKNOWN202", 1},
	OpUnknown203: {OpUnknown203, "OP_UNKNOWN203", 1},
	OpUnknown204: {OpUnknown204, "OP_UNKNOWN204", 1},
	OpUnknown205: {OpUnknown205, "OP_UNKNOWN205", 1},
	OpUnknown206: {OpUnknown206, "OP_UNKNOWN206", 1},
	OpUnknown207: {OpUnknown207, "OP_UNKNOWN207", 1},
	OpUnknown208: {OpUnknown208, "OP_UNKNOWN208", 1},
	OpUnknown209: {OpUnknown209, "OP_UNKNOWN209", 1},
	OpUnknown210: {OpUnknown210, "OP_UNKNOWN210", 1},
	OpUnknown211: {OpUnknown211, "OP_UNKNOWN211", 1},
	OpUnknown212: {OpUnknown212, "OP_UNKNOWN212", 1},
	OpUnknown213: {OpUnknown213, "OP_UNKNOWN213", 1},
	OpUnknown214: {OpUnknown214, "OP_UNKNOWN214", 1},
	OpUnknown215: {OpUnknown215, "OP_UNKNOWN215", 1},
	OpUnknown216: {OpUnknown216, "OP_UNKNOWN216", 1},
	OpUnknown217: {OpUnknown217, "OP_UNKNOWN217", 1},
	OpUnknown218: {OpUnknown218, "OP_UNKNOWN218", 1},
	OpUnknown219: {OpUnknown219, "OP_UNKNOWN219", 1},
	OpUnknown220: {OpUnknown220, "OP_UNKNOWN220", 1},
	OpUnknown221: {OpUnknown221, "OP_UNKNOWN221", 1},
	OpUnknown222: {OpUnknown222, "OP_UNKNOWN222", 1},
	OpUnknown223: {OpUnknown223, "OP_UNKNOWN223", 1},
	OpUnknown224: {OpUnknown224, "OP_UNKNOWN224", 1},
	OpUnknown225: {OpUnknown225, "OP_UNKNOWN225", 1},
	OpUnknown226: {OpUnknown226, "OP_UNKNOWN226", 1},
	OpUnknown227: {OpUnknown227, "OP_UNKNOWN227", 1},
	OpUnknown228: {OpUnknown228, "OP_UNKNOWN228", 1},
	OpUnknown229: {OpUnknown229, "OP_UNKNOWN229", 1},
	OpUnknown230: {OpUnknown230, "OP_UNKNOWN230", 1},
	OpUnknown231: {OpUnknown231, "OP_UNKNOWN231", 1},
	OpUnknown232: {OpUnknown232, "OP_UNKNOWN232", 1},
	OpUnknown233: {OpUnknown233, "OP_UNKNOWN233", 1},
	OpUnknown234: {OpUnknown234, "OP_UNKNOWN234", 1},
	OpUnknown235: {OpUnknown235, "OP_UNKNOWN235", 1},
	OpUnknown236: {OpUnknown236, "OP_UNKNOWN236", 1},
	OpUnknown237: {OpUnknown237, "OP_UNKNOWN237", 1},
	OpUnknown238: {OpUnknown238, "OP_UNKNOWN238", 1},
	OpUnknown239: {OpUnknown239, "OP_UNKNOWN239", 1},
	OpUnknown240: {OpUnknown240, "OP_UNKNOWN240", 1},
	OpUnknown241: {OpUnknown241, "OP_UNKNOWN241", 1},
	OpUnknown242: {OpUnknown242, "OP_UNKNOWN242", 1},
	OpUnknown243: {OpUnknown243, "OP_UNKNOWN243", 1},
	OpUnknown244: {OpUnknown244, "OP_UNKNOWN244", 1},
	OpUnknown245: {OpUnknown245, "OP_UNKNOWN245", 1},
	OpUnknown246: {OpUnknown246, "OP_UNKNOWN246", 1},
	OpUnknown247: {OpUnknown247, "OP_UNKNOWN247", 1},
	OpUnknown248: {OpUnknown248, "OP_UNKNOWN248", 1},
	OpUnknown249: {OpUnknown249, "OP_UNKNOWN249", 1},

	// Bitcoin Core internal use opcodes.
	OpSmallInteger:  {OpSmallInteger, "OP_SMALLINTEGER", 1},
	OpPubKeys:       {OpPubKeys, "OP_PUBKEYS", 1},
	OpUnknown252:    {OpUnknown252, "OP_UNKNOWN252", 1},
	OpPubKeyHash:    {OpPubKeyHash, "OP_PUBKEYHASH", 1},
	OpPubKey:        {OpPubKey, "OP_PUBKEY", 1},
	OpInvalidOpCode: {OpInvalidOpCode, "OP_INVALIDOPCODE", 1},
}

// OpcodeByName is a map that can be used to lookup an opcode by its
// human-readable name (OP_CHECKMULTISIG, OP_CHECKSIG, etc).
var OpcodeByName = make(map[string]byte)

func init() {
	// Initialize the opcode name to value map using the contents of the
	// opcode array. Also add entries for "OP_FALSE", "OP_TRUE", "OP_NOP2"
	// and "OP_NOP3" since they are aliases for "OP_0", "OP_1",
	// "OP_CHECKLOCKTIMEVERIFY" and "OP_CHECKSEQUENCEVERIFY" respectively,
	// and "OP_DATA_#" aliases for the "OP_PUSHBYTES_#" direct pushes.
	for _, op := range opcodeArray {
		OpcodeByName[op.name] = op.value
	}
	OpcodeByName["OP_FALSE"] = OpFalse
	OpcodeByName["OP_TRUE"] = OpTrue
	OpcodeByName["OP_NOP2"] = OpCheckLockTimeVerify
	OpcodeByName["OP_NOP3"] = OpCheckSequenceVerify
	for i := OpData1; i <= OpData75; i++ {
		OpcodeByName[fmt.Sprintf("OP_DATA_%d", i)] = byte(i)
	}
}

// ParseOpcode returns the opcode value for the given canonical opcode name or
// one of its registered aliases.
func ParseOpcode(name string) (byte, bool) {
	op, ok := OpcodeByName[name]
	return op, ok
}

// OpcodeName returns the canonical human-readable name for the given opcode
// value.
func OpcodeName(op byte) string {
	return opcodeArray[op].name
}

// IsPushBytesOpcode returns whether the opcode directly encodes the length of
// the data it pushes, i.e. it is OP_0 or one of the OP_PUSHBYTES_1 through
// OP_PUSHBYTES_75 opcodes.
func IsPushBytesOpcode(op byte) bool {
	return op <= OpData75
}

// IsPushDataOpcode returns whether the opcode carries an explicit length
// header before its data, i.e. it is one of OP_PUSHDATA1, OP_PUSHDATA2 or
// OP_PUSHDATA4.
func IsPushDataOpcode(op byte) bool {
	return op == OpPushData1 || op == OpPushData2 || op == OpPushData4
}
