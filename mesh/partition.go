package mesh

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// GetBucket finds the partition holding index i, bucketNum is -1 when i is
// out of range.
func (pm *PartitionMap) GetBucket(i int) (bucketNum, min, max int) {
	if i < 0 || i >= pm.MaxIndex {
		return -1, 0, 0
	}
	// Initial guess
	bucketNum = int(float64(pm.ParallelDegree*i) / float64(pm.MaxIndex))
	for !(pm.Partitions[bucketNum][0] <= i && pm.Partitions[bucketNum][1] > i) {
		if pm.Partitions[bucketNum][0] > i {
			bucketNum--
		} else {
			bucketNum++
		}
	}
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (iMin, iMax int) {
	iMin, iMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (iMax int) {
	if bn == -1 {
		iMax = pm.MaxIndex
		return
	}
	var (
		i1, i2 = pm.GetBucketRange(bn)
	)
	iMax = i2 - i1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// Splits one dimension into ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
