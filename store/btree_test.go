package store

import (
	"testing"

	"github.com/iov-one/barter/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func memStoreConstructor() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeCacheGetSet(t *testing.T) {
	NewTestSuite(memStoreConstructor).GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	NewTestSuite(memStoreConstructor).CacheConflicts(t)
}

func TestBTreeCacheIterator(t *testing.T) {
	NewTestSuite(memStoreConstructor).IteratorWithConflicts(t)
}

func TestNestedCacheWraps(t *testing.T) {
	Convey("Given a memory store with a committed value", t, func() {
		base := MemStore()
		So(base.Set([]byte("depositor"), []byte("alice")), ShouldBeNil)

		Convey("A nested cache sees the parent data", func() {
			outer := base.CacheWrap()
			inner := outer.CacheWrap()
			got, err := inner.Get([]byte("depositor"))
			So(err, ShouldBeNil)
			So(string(got), ShouldEqual, "alice")

			Convey("Writing the inner cache only reaches the outer one", func() {
				So(inner.Set([]byte("counterparty"), []byte("bob")), ShouldBeNil)
				So(inner.Write(), ShouldBeNil)

				has, err := outer.Has([]byte("counterparty"))
				So(err, ShouldBeNil)
				So(has, ShouldBeTrue)
				has, err = base.Has([]byte("counterparty"))
				So(err, ShouldBeNil)
				So(has, ShouldBeFalse)

				Convey("And writing the outer cache reaches the base", func() {
					So(outer.Write(), ShouldBeNil)
					has, err := base.Has([]byte("counterparty"))
					So(err, ShouldBeNil)
					So(has, ShouldBeTrue)
				})
			})

			Convey("Discarding the inner cache drops its deletes", func() {
				So(inner.Delete([]byte("depositor")), ShouldBeNil)
				has, err := inner.Has([]byte("depositor"))
				So(err, ShouldBeNil)
				So(has, ShouldBeFalse)

				inner.Discard()
				has, err = outer.Has([]byte("depositor"))
				So(err, ShouldBeNil)
				So(has, ShouldBeTrue)
			})
		})
	})
}

func TestLogableStore(t *testing.T) {
	Convey("A logable store records every operation in order", t, func() {
		kv, ops := LogableStore()
		So(kv.Set([]byte("a"), []byte("1")), ShouldBeNil)
		So(kv.Delete([]byte("b")), ShouldBeNil)

		recorded := ops.ShowOps()
		So(recorded, ShouldHaveLength, 2)
		key, value, ok := recorded[0].IsSetOp()
		So(ok, ShouldBeTrue)
		So(string(key), ShouldEqual, "a")
		So(string(value), ShouldEqual, "1")
		key, ok = recorded[1].IsDeleteOp()
		So(ok, ShouldBeTrue)
		So(string(key), ShouldEqual, "b")
	})
}

func TestSliceIterator(t *testing.T) {
	Convey("A slice iterator returns every model and then stops", t, func() {
		models := sortModels(seqModels("k", 3))
		it := NewSliceIterator(models)
		for _, m := range models {
			k, v, err := it.Next()
			So(err, ShouldBeNil)
			So(k, ShouldResemble, m.Key)
			So(v, ShouldResemble, m.Value)
		}
		_, _, err := it.Next()
		So(errors.ErrIteratorDone.Is(err), ShouldBeTrue)
		it.Release()
	})
}
