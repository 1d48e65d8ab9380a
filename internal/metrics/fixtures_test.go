package metrics

import (
	"github.com/reveng-lab/decompeval/internal/compare"
	"github.com/reveng-lab/decompeval/internal/model"
)

func intType() *model.DataType {
	return &model.DataType{Name: "int", Meta: model.MetaTypeInt, Size: 4}
}

func doubleType() *model.DataType {
	return &model.DataType{Name: "double", Meta: model.MetaTypeFloat, Size: 8}
}

func floatType() *model.DataType {
	return &model.DataType{Name: "float", Meta: model.MetaTypeFloat, Size: 4}
}

func arrayType(n int, base *model.DataType) *model.DataType {
	return &model.DataType{
		Name:        "array",
		Meta:        model.MetaTypeArray,
		Size:        n * base.Size,
		NumElements: n,
		Base:        base,
	}
}

func structType(fields ...*model.DataType) *model.DataType {
	dt := &model.DataType{Name: "struct", Meta: model.MetaTypeStruct}
	off := int64(0)
	for _, f := range fields {
		dt.Fields = append(dt.Fields, model.StructField{Offset: off, Type: f})
		off += int64(f.Size)
		dt.Size += f.Size
	}
	return dt
}

func stackAddr(off int64) model.Address {
	return model.Address{Kind: model.AddressStack, Offset: off}
}

func absAddr(off int64) model.Address {
	return model.Address{Kind: model.AddressAbsolute, Offset: off}
}

func regAddr(n int64) model.Address {
	return model.Address{Kind: model.AddressRegister, Offset: n}
}

// addLocal attaches a fresh single-location variable to fn and returns
// its varnode.
func addLocal(fn *model.Function, name string, param bool, addr model.Address, dt *model.DataType) *model.Varnode {
	v := &model.Variable{Name: name, Param: param, Function: fn}
	vn := model.NewVarnode(addr, dt, v)
	v.Varnodes = []*model.Varnode{vn}
	fn.Variables = append(fn.Variables, v)
	return vn
}

func addGlobal(p *model.Program, addr model.Address, dt *model.DataType) *model.Varnode {
	vn := model.NewVarnode(addr, dt, nil)
	p.Globals = append(p.Globals, vn)
	return vn
}

func addFunction(p *model.Program, name string, entry int64) *model.Function {
	fn := &model.Function{Name: name, Entry: absAddr(entry)}
	p.Functions = append(p.Functions, fn)
	return fn
}

func pair(left, right *model.Varnode, level compare.VarnodeCompareLevel) *compare.VarnodeCompare2 {
	return compare.NewVarnodeCompare2(left, right, level)
}

func newSession(cmp *compare.ProgramComparison) *Session {
	return NewSession(cmp, Options{})
}

// bytesFixture reproduces the reference byte-recovery scenario: two
// eligible ground-truth varnodes of 4 and 8 bytes, each overlapped by
// 4 recovered bytes.
func bytesFixture() *compare.ProgramComparison {
	truth := &model.Program{Name: "truth"}
	tmain := addFunction(truth, "main", 0x1000)
	a := addLocal(tmain, "a", false, stackAddr(8), intType())
	b := addLocal(tmain, "b", false, stackAddr(16), doubleType())

	recov := &model.Program{Name: "decomp"}
	rmain := addFunction(recov, "main", 0x1000)
	ra := addLocal(rmain, "a", false, stackAddr(8), intType())
	rb := addLocal(rmain, "b", false, stackAddr(16), floatType())

	return compare.NewProgramComparison(truth, recov,
		[]compare.FunctionMatch{{Left: tmain, Right: rmain}},
		[]*compare.VarnodeCompare2{
			pair(a, ra, compare.VarnodeMatch),
			pair(b, rb, compare.VarnodeSubset),
		})
}

// richFixture exercises most selections at once: eligible and
// ineligible varnodes, several match levels, missed and extraneous
// entities on both sides, and an array pair with mismatched shape.
func richFixture() *compare.ProgramComparison {
	truth := &model.Program{Name: "truth"}
	tmain := addFunction(truth, "main", 0x1000)
	a := addLocal(tmain, "a", false, stackAddr(8), intType())
	b := addLocal(tmain, "b", false, stackAddr(16), doubleType())
	addLocal(tmain, "p", true, stackAddr(24), intType())  // param: ineligible
	addLocal(tmain, "r", false, regAddr(0), intType())    // register: ineligible
	addLocal(tmain, "m", false, stackAddr(32), intType()) // never recovered
	addFunction(truth, "helper", 0x1100)
	g := addGlobal(truth, absAddr(0x2000), arrayType(10, intType()))

	recov := &model.Program{Name: "decomp"}
	rmain := addFunction(recov, "main", 0x1000)
	ra := addLocal(rmain, "a", false, stackAddr(8), intType())
	rb := addLocal(rmain, "b", false, stackAddr(16), floatType())
	addLocal(rmain, "x", false, stackAddr(40), intType()) // extraneous
	addFunction(recov, "junk", 0x9000)                    // extraneous function
	rg := addGlobal(recov, absAddr(0x2000), arrayType(8, intType()))

	return compare.NewProgramComparison(truth, recov,
		[]compare.FunctionMatch{{Left: tmain, Right: rmain}},
		[]*compare.VarnodeCompare2{
			pair(a, ra, compare.VarnodeMatch),
			pair(b, rb, compare.VarnodeOverlap),
			pair(g, rg, compare.VarnodeAligned),
		})
}
