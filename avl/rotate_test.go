// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2022 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightOf(t *testing.T) {
	assert.Equal(t, 0, heightOf[int, int](nil), "absent node")

	leaf := &Node[int, int]{}
	assert.True(t, updateHeight(leaf), "first height update")
	assert.Equal(t, 1, leaf.height, "leaf height")
	assert.False(t, updateHeight(leaf), "repeated height update")
}

func TestRotateWithoutChild(t *testing.T) {
	tree := NewPrimary[int, int](cmp.Compare[int])
	tree.Set(1, 1)
	x := tree.root

	assert.True(t, x == tree.rotateLeft(x), "left rotation without right child")
	assert.True(t, x == tree.rotateRight(x), "right rotation without left child")
	assert.True(t, x == tree.root, "root moved")
}

// ascending keys force a left rotation at the root
func TestRotateLeftAtRoot(t *testing.T) {
	tree := NewPrimary[int, int](cmp.Compare[int])
	tree.Set(1, 1)
	tree.Set(2, 2)
	tree.Set(3, 3)

	assert.Equal(t, 2, tree.root.key, "new root")
	assert.Nil(t, tree.root.parent, "root parent")
	assert.Equal(t, 1, tree.root.left.key, "left child")
	assert.Equal(t, 3, tree.root.right.key, "right child")
	assert.True(t, tree.root == tree.root.left.parent, "left parent link")
	assert.True(t, tree.root == tree.root.right.parent, "right parent link")
	assert.Equal(t, 2, tree.root.height, "root height")
	assert.Nil(t, tree.Check(), "tree check")
}

// 3, 1, 2 is the left-right case: a double rotation
func TestDoubleRotation(t *testing.T) {
	tree := NewPrimary[int, int](cmp.Compare[int])
	tree.Set(3, 3)
	tree.Set(1, 1)
	tree.Set(2, 2)

	assert.Equal(t, 2, tree.root.key, "new root")
	assert.Equal(t, 1, tree.root.left.key, "left child")
	assert.Equal(t, 3, tree.root.right.key, "right child")
	assert.Nil(t, tree.Check(), "tree check")

	// and the mirror: right-left
	tree.Clear()
	tree.Set(1, 1)
	tree.Set(3, 3)
	tree.Set(2, 2)
	assert.Equal(t, 2, tree.root.key, "mirror root")
	assert.Nil(t, tree.Check(), "mirror check")
}

// emptying the right side of a left heavy tree forces rotations
func TestDeleteCascade(t *testing.T) {
	tree := NewPrimary[int, int](cmp.Compare[int])
	for _, k := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Set(k, k)
	}
	assert.Nil(t, tree.Check(), "initial check")

	for _, k := range []int{12, 11, 10, 9} {
		tree.Del(k)
		assert.Nil(t, tree.Check(), "after delete %d", k)
	}
	assert.Equal(t, 8, tree.size, "size")
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := NewPrimary[int, int](cmp.Compare[int])
	for i := 0; i < 7; i += 1 {
		tree.Set(i, i)
	}
	assert.Nil(t, tree.Check(), "clean tree")

	tree.root.height += 1
	assert.NotNil(t, tree.CheckHeights(), "height corruption")
	tree.root.height -= 1

	saved := tree.root.left.parent
	tree.root.left.parent = nil
	assert.NotNil(t, tree.CheckUp(), "parent corruption")
	tree.root.left.parent = saved

	tree.root.key, tree.root.left.key = tree.root.left.key, tree.root.key
	assert.NotNil(t, tree.CheckOrder(), "order corruption")
	tree.root.key, tree.root.left.key = tree.root.left.key, tree.root.key

	tree.size += 1
	assert.NotNil(t, tree.CheckSize(), "size corruption")
	tree.size -= 1

	assert.Nil(t, tree.Check(), "restored tree")
}
